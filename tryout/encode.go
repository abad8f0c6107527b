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
)

// Encode builds the chunk sequence of the tryout: id, title, description, then
// one chunk per question in order. The id is written in its base-62 text form,
// or empty when unassigned.
func (t *Tryout) Encode() (chunk.Chunks, error) {
	idText := ""
	if t.ID != nil {
		idText = t.ID.String()
	}

	chunks := make(chunk.Chunks, 0, 3+len(t.Questions))
	for _, field := range []struct {
		tlvType uint32
		value   string
	}{
		{TypeID, idText},
		{TypeTitle, t.Title},
		{TypeDescription, t.Description},
	} {
		c, err := chunk.NewString(field.tlvType, field.value)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}

	for i := range t.Questions {
		c, err := t.Questions[i].Encode()
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}

// Bytes returns the wire encoding of the tryout.
func (t *Tryout) Bytes() ([]byte, error) {
	chunks, err := t.Encode()
	if err != nil {
		return nil, err
	}
	return chunks.Wire(), nil
}

// Encode builds the chunk of the question. The choice count must be valid for its kind.
func (q *Question) Encode() (*chunk.Chunk, error) {
	if !q.Kind.IsValid() {
		return nil, fmt.Errorf("question type %d: %w", uint32(q.Kind), ErrUnknownTypeIndex)
	}
	if err := checkChoiceCount(q.Kind, len(q.Choices)); err != nil {
		return nil, err
	}

	prompt, err := chunk.NewString(typePrompt, q.Prompt)
	if err != nil {
		return nil, err
	}
	inner := chunk.Chunks{prompt}

	if q.Kind != Essay {
		choices := make(chunk.Chunks, 0, len(q.Choices))
		for _, choice := range q.Choices {
			tlvType := typeIncorrect
			if choice.Correct {
				tlvType = typeCorrect
			}
			c, err := chunk.NewString(tlvType, choice.Name)
			if err != nil {
				return nil, err
			}
			choices = append(choices, c)
		}
		wrapper, err := chunk.NewNested(typeChoices, choices)
		if err != nil {
			return nil, err
		}
		inner = append(inner, wrapper)
	}

	return chunk.NewNested(uint32(q.Kind), inner)
}
