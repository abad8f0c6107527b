/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tryout

import "errors"

// Tryout decoding and reconstruction errors.
var (
	ErrUnknownTypeIndex      = errors.New("unknown type index")
	ErrDuplicateField        = errors.New("duplicate field")
	ErrInvalidIDFormat       = errors.New("invalid identifier format")
	ErrInvalidQuestionID     = errors.New("invalid question group id")
	ErrMissingQuestionPrompt = errors.New("question has no prompt")
	ErrMissingQuestionType   = errors.New("question has no type")
	ErrTooManyChoices        = errors.New("too many choices for question type")
	ErrNotEnoughChoices      = errors.New("not enough choices for question type")
	ErrUnknownQuestionType   = errors.New("unknown question type")
	ErrMalformedField        = errors.New("malformed field")
)
