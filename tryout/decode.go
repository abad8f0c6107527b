/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tryout

import (
	"fmt"

	"github.com/tryoutd/tryoutd/chunk"
	"github.com/tryoutd/tryoutd/ident"
)

// DecodeBytes decodes a tryout from its wire encoding.
func DecodeBytes(wire []byte) (*Tryout, error) {
	chunks, err := chunk.Decode(wire)
	if err != nil {
		return nil, err
	}
	return Decode(chunks)
}

// Decode interprets a chunk sequence as a tryout. Unknown top-level types are skipped.
func Decode(chunks chunk.Chunks) (*Tryout, error) {
	t := new(Tryout)
	var hasID, hasTitle, hasDescription bool
	for _, c := range chunks {
		tlvType := c.Type()
		switch {
		case tlvType >= 1 && tlvType <= MaxQuestionType:
			q, err := decodeQuestion(c)
			if err != nil {
				return nil, fmt.Errorf("question %d: %w", len(t.Questions), err)
			}
			t.Questions = append(t.Questions, q)
		case tlvType == TypeID:
			if hasID {
				return nil, fmt.Errorf("id: %w", ErrDuplicateField)
			}
			hasID = true
			if c.Size() == 0 {
				continue
			}
			id, err := ident.Parse(c.String())
			if err != nil && c.Size() == ident.Size {
				// raw 128-bit form written by older encoders
				id, err = ident.FromBytes(c.Value())
			}
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidIDFormat, c.String())
			}
			t.ID = &id
		case tlvType == TypeTitle:
			if hasTitle {
				return nil, fmt.Errorf("title: %w", ErrDuplicateField)
			}
			hasTitle = true
			t.Title = c.String()
		case tlvType == TypeDescription:
			if hasDescription {
				return nil, fmt.Errorf("description: %w", ErrDuplicateField)
			}
			hasDescription = true
			t.Description = c.String()
		default:
			// Reserved for future fields
		}
	}
	return t, nil
}

func decodeQuestion(c *chunk.Chunk) (Question, error) {
	q := Question{Kind: Kind(c.Type())}
	if !q.Kind.IsValid() {
		return Question{}, fmt.Errorf("question type %d: %w", c.Type(), ErrUnknownTypeIndex)
	}

	inner, err := c.Parse()
	if err != nil {
		return Question{}, err
	}

	hasPrompt := false
	var choices []Choice
	for _, elem := range inner {
		switch elem.Type() {
		case typePrompt:
			if hasPrompt {
				return Question{}, fmt.Errorf("prompt: %w", ErrDuplicateField)
			}
			hasPrompt = true
			q.Prompt = elem.String()
		case typeChoices:
			if q.Kind == Essay {
				return Question{}, ErrTooManyChoices
			}
			choices, err = decodeChoices(elem, choices)
			if err != nil {
				return Question{}, err
			}
		default:
			return Question{}, fmt.Errorf("question element type %d: %w", elem.Type(), ErrUnknownTypeIndex)
		}
	}

	switch q.Kind {
	case TrueOrFalse:
		if err := checkChoiceCount(q.Kind, len(choices)); err != nil {
			return Question{}, err
		}
		q.Choices = choices
	case MultipleChoice:
		// the upper bound is only enforced when encoding
		if len(choices) < 1 {
			return Question{}, ErrNotEnoughChoices
		}
		q.Choices = choices
	}
	return q, nil
}

// decodeChoices appends the choices contained in a choices wrapper to choices.
func decodeChoices(wrapper *chunk.Chunk, choices []Choice) ([]Choice, error) {
	inner, err := wrapper.Parse()
	if err != nil {
		return nil, err
	}
	for _, elem := range inner {
		switch elem.Type() {
		case typeIncorrect:
			choices = append(choices, Choice{Name: elem.String()})
		case typeCorrect:
			choices = append(choices, Choice{Name: elem.String(), Correct: true})
		default:
			return nil, fmt.Errorf("choice type %d: %w", elem.Type(), ErrUnknownTypeIndex)
		}
	}
	return choices, nil
}
