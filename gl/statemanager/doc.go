// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package statemanager keeps the native GL context in line with the GL
// state of one or more logical contexts.
//
// The Manager holds a copy of every piece of native state it has set. Native
// calls are only issued when the requested value differs from the copy, so
// redundant state changes never reach the driver. SyncState walks the dirty
// bits of a state.State in ascending order and pushes each category; the
// handlers of the program bits schedule the resource categories the program
// reads later in the same walk.
//
// Native objects are released through the Manager, which unbinds them from
// every binding point first so that recycled handles are never mistaken for
// bound ones.
package statemanager
