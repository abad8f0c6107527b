/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package tryout maps quiz records to and from the chunk format and
// reconstructs them from submitted web forms.
package tryout

import (
	"strconv"

	"github.com/tryoutd/tryoutd/ident"
)

// Top-level chunk types. Types 1 through MaxQuestionType carry questions.
const (
	TypeID          uint32 = 16
	TypeTitle       uint32 = 17
	TypeDescription uint32 = 18

	MaxQuestionType uint32 = 15
)

// Chunk types inside a question.
const (
	typePrompt  uint32 = 0
	typeChoices uint32 = 1
)

// Chunk types inside a choices wrapper.
const (
	typeIncorrect uint32 = 0
	typeCorrect   uint32 = 1
)

// MaxMultipleChoices is the most choices a MultipleChoice question may have.
const MaxMultipleChoices = 10

// Kind is the type of a question. Its value doubles as the question's chunk type.
type Kind uint32

// Question kinds.
const (
	TrueOrFalse    Kind = 1
	MultipleChoice Kind = 2
	Essay          Kind = 3
)

// ParseKind converts the form selector value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "1":
		return TrueOrFalse, nil
	case "2":
		return MultipleChoice, nil
	case "3":
		return Essay, nil
	}
	return 0, ErrUnknownQuestionType
}

func (k Kind) String() string {
	switch k {
	case TrueOrFalse:
		return "TrueOrFalse"
	case MultipleChoice:
		return "MultipleChoice"
	case Essay:
		return "Essay"
	}
	return "Kind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// IsValid returns whether k is one of the defined kinds.
func (k Kind) IsValid() bool {
	return k >= TrueOrFalse && k <= Essay
}

// MinChoices returns the fewest choices a question of this kind may have.
func (k Kind) MinChoices() int {
	switch k {
	case TrueOrFalse:
		return 2
	case MultipleChoice:
		return 1
	}
	return 0
}

// MaxChoices returns the most choices a question of this kind may have.
func (k Kind) MaxChoices() int {
	switch k {
	case TrueOrFalse:
		return 2
	case MultipleChoice:
		return MaxMultipleChoices
	}
	return 0
}

// Tryout is a quiz.
type Tryout struct {
	// ID is nil until the tryout has been assigned an identifier.
	ID          *ident.ID
	Title       string
	Description string
	Questions   []Question
}

// Question is a single quiz question. Choices is empty for essays.
type Question struct {
	Kind    Kind
	Prompt  string
	Choices []Choice
}

// Choice is one answer option of a question.
type Choice struct {
	Name    string
	Correct bool
}

// checkChoiceCount validates n against the bounds of kind.
func checkChoiceCount(kind Kind, n int) error {
	if n > kind.MaxChoices() {
		return ErrTooManyChoices
	} else if n < kind.MinChoices() {
		return ErrNotEnoughChoices
	}
	return nil
}
