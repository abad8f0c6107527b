/* Tryoutd - Tryout quiz authoring daemon
 *
 * Copyright (C) 2024 The Tryoutd Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tryout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tryoutd/tryoutd/form"
	"github.com/tryoutd/tryoutd/ident"
)

// Reserved top-level form field names.
const (
	FieldTitle       = "t"
	FieldDescription = "d"
	FieldID          = "a"
)

// Field kinds, the first character after the group separator.
const (
	fieldPrompt    = 'q'
	fieldType      = 't'
	fieldIncorrect = 'o'
	fieldCorrect   = 'c'
)

// FromForm reconstructs a tryout from submitted form fields.
//
// Question fields are named "<group>_<kind><rest>". A question ends as soon as
// a field from a different group arrives, so the fields of each question must
// be submitted next to each other. A group that reappears later starts a new
// question.
func FromForm(fields form.Fields) (*Tryout, error) {
	r := formReader{tryout: new(Tryout)}
	for _, f := range fields {
		if err := r.read(f); err != nil {
			return nil, err
		}
	}
	if err := r.flush(); err != nil {
		return nil, err
	}
	return r.tryout, nil
}

// ToForm returns the form fields that FromForm reconstructs t from. Each
// question becomes group i with its prompt, type and choices in order.
func ToForm(t *Tryout) form.Fields {
	id := ""
	if t.ID != nil {
		id = t.ID.String()
	}
	fields := form.Fields{
		{Name: FieldID, Value: id},
		{Name: FieldTitle, Value: t.Title},
		{Name: FieldDescription, Value: t.Description},
	}
	for i, q := range t.Questions {
		group := strconv.Itoa(i) + "_"
		fields = append(fields,
			form.Field{Name: group + string(fieldPrompt), Value: q.Prompt},
			form.Field{Name: group + string(fieldType), Value: strconv.Itoa(int(q.Kind))},
		)
		for j, c := range q.Choices {
			kind := fieldIncorrect
			if c.Correct {
				kind = fieldCorrect
			}
			fields = append(fields, form.Field{Name: group + string(kind) + strconv.Itoa(j), Value: c.Name})
		}
	}
	return fields
}

// formReader accumulates fields into a tryout, one question group at a time.
type formReader struct {
	tryout         *Tryout
	hasTitle       bool
	hasDescription bool
	hasID          bool

	group uint64
	draft *questionDraft
}

func (r *formReader) read(f form.Field) error {
	switch f.Name {
	case FieldTitle:
		if r.hasTitle {
			return fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		r.hasTitle = true
		r.tryout.Title = f.Value
		return nil
	case FieldDescription:
		if r.hasDescription {
			return fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		r.hasDescription = true
		r.tryout.Description = f.Value
		return nil
	case FieldID:
		if r.hasID {
			return fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		r.hasID = true
		if f.Value == "" {
			return nil
		}
		id, err := ident.Parse(f.Value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidIDFormat, f.Value)
		}
		r.tryout.ID = &id
		return nil
	}

	group, kind, err := parseFieldName(f.Name)
	if err != nil {
		return err
	}
	if r.draft != nil && group != r.group {
		if err := r.flush(); err != nil {
			return err
		}
	}
	if r.draft == nil {
		r.group = group
		r.draft = new(questionDraft)
	}
	if err := r.draft.add(kind, f.Value); err != nil {
		return fmt.Errorf("field %q: %w", f.Name, err)
	}
	return nil
}

// flush finalizes the question in progress, if any.
func (r *formReader) flush() error {
	if r.draft == nil {
		return nil
	}
	q, err := r.draft.build()
	if err != nil {
		return fmt.Errorf("question group %d: %w", r.group, err)
	}
	r.tryout.Questions = append(r.tryout.Questions, q)
	r.draft = nil
	return nil
}

// parseFieldName splits a question field name into its group id and field kind.
func parseFieldName(name string) (uint64, byte, error) {
	groupText, rest, ok := strings.Cut(name, "_")
	if !ok || rest == "" {
		return 0, 0, fmt.Errorf("field %q: %w", name, ErrMalformedField)
	}
	group, err := strconv.ParseUint(groupText, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("field %q: %w", name, ErrInvalidQuestionID)
	}
	return group, rest[0], nil
}

// questionDraft is a question whose fields are still arriving.
type questionDraft struct {
	prompt    string
	hasPrompt bool
	kind      Kind
	choices   []Choice
}

func (d *questionDraft) add(fieldKind byte, value string) error {
	switch fieldKind {
	case fieldPrompt:
		if d.hasPrompt {
			return ErrDuplicateField
		}
		d.hasPrompt = true
		d.prompt = value
	case fieldType:
		if d.kind != 0 {
			return ErrDuplicateField
		}
		kind, err := ParseKind(value)
		if err != nil {
			return fmt.Errorf("%w: %q", err, value)
		}
		d.kind = kind
	case fieldIncorrect, fieldCorrect:
		if d.kind == Essay {
			return fmt.Errorf("%w: essay questions take no choices", ErrMalformedField)
		}
		limit := MaxMultipleChoices
		if d.kind != 0 {
			limit = d.kind.MaxChoices()
		}
		if len(d.choices) >= limit {
			return ErrTooManyChoices
		}
		d.choices = append(d.choices, Choice{Name: value, Correct: fieldKind == fieldCorrect})
	default:
		return ErrMalformedField
	}
	return nil
}

func (d *questionDraft) build() (Question, error) {
	if !d.hasPrompt {
		return Question{}, ErrMissingQuestionPrompt
	}
	if d.kind == 0 {
		return Question{}, ErrMissingQuestionType
	}
	if err := checkChoiceCount(d.kind, len(d.choices)); err != nil {
		return Question{}, err
	}
	q := Question{Kind: d.kind, Prompt: d.prompt}
	if d.kind != Essay {
		q.Choices = d.choices
	}
	return q, nil
}
