/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package input

import "testing"

func TestEventConstructorsAndString(t *testing.T) {
	e := Down(ButtonPrimary, 10, 20)
	if e.Kind != PointerDown || e.Pos.X != 10 || e.Pos.Y != 20 || e.Button != ButtonPrimary {
		t.Fatalf("unexpected event: %+v", e)
	}
	if s := e.String(); s != "down left 10 20" {
		t.Fatalf("unexpected string: %q", s)
	}
	if s := Move(1.5, 2).String(); s != "move 1.5 2" {
		t.Fatalf("unexpected string: %q", s)
	}
	if s := QuitEvent().String(); s != "quit" {
		t.Fatalf("unexpected string: %q", s)
	}
}

func TestIsDelete(t *testing.T) {
	if !Release(KeyDelete).IsDelete() || !Release(KeyBackspace).IsDelete() {
		t.Fatalf("delete and backspace should remove the selection")
	}
	if Release(KeyEscape).IsDelete() || (Event{Kind: PointerUp, Key: KeyDelete}).IsDelete() {
		t.Fatalf("only key releases of delete keys count")
	}
}
