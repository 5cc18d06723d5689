// Copyright 2025 Caralegal Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidAct indicates an Act failed validation.
	ErrInvalidAct = errors.New("invalid act")

	// ErrEmptyActTitle indicates the act Title field is empty.
	ErrEmptyActTitle = errors.New("act title cannot be empty")

	// ErrInvalidLanguage indicates an unrecognized Language value.
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrEmptyText indicates an empty document was submitted for analysis.
	ErrEmptyText = errors.New("document text cannot be empty")
)
