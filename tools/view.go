/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package tools implements the tryoutctl subcommands.
package tools

import (
	"fmt"
	"os"

	"github.com/tryoutd/tryoutd/chunk"
	"github.com/tryoutd/tryoutd/tryout"
)

type tryoutView struct {
	ID          string         `json:"id,omitempty" yaml:"id,omitempty" msgpack:"id,omitempty"`
	Title       string         `json:"title" yaml:"title" msgpack:"title"`
	Description string         `json:"description" yaml:"description" msgpack:"description"`
	Questions   []questionView `json:"questions" yaml:"questions" msgpack:"questions"`
}

type questionView struct {
	Kind    string       `json:"kind" yaml:"kind" msgpack:"kind"`
	Prompt  string       `json:"prompt" yaml:"prompt" msgpack:"prompt"`
	Choices []choiceView `json:"choices,omitempty" yaml:"choices,omitempty" msgpack:"choices,omitempty"`
}

type choiceView struct {
	Name    string `json:"name" yaml:"name" msgpack:"name"`
	Correct bool   `json:"correct" yaml:"correct" msgpack:"correct"`
}

func newTryoutView(t *tryout.Tryout) tryoutView {
	v := tryoutView{
		Title:       t.Title,
		Description: t.Description,
		Questions:   make([]questionView, 0, len(t.Questions)),
	}
	if t.ID != nil {
		v.ID = t.ID.String()
	}
	for _, q := range t.Questions {
		qv := questionView{Kind: q.Kind.String(), Prompt: q.Prompt}
		for _, c := range q.Choices {
			qv.Choices = append(qv.Choices, choiceView(c))
		}
		v.Questions = append(v.Questions, qv)
	}
	return v
}

// readChunks reads the whole chunk sequence stored in file.
func readChunks(file string) (chunk.Chunks, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	chunks, err := chunk.ReadChunks(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return chunks, nil
}
