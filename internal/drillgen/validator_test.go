package drillgen

import "testing"

func validBatch() *Batch {
	q := func() *GeneratedQuestion {
		return &GeneratedQuestion{Question: "Who wrote it?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3}
	}
	return &Batch{
		Passages: []GeneratedPassage{
			{Reference: "John 3:16", Text: "For God so loved the world", ContextQuestion: q()},
			{Reference: "Romans 8:28", Text: "In all things God works", ContextQuestion: q()},
			{Reference: "Psalm 23:1", Text: "The Lord is my shepherd", ContextQuestion: q()},
		},
		WantText:     true,
		WantQuestion: true,
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *Batch)
		ok     bool
	}{
		{"valid", func(b *Batch) {}, true},
		{"two passages", func(b *Batch) { b.Passages = b.Passages[:2] }, false},
		{"empty reference", func(b *Batch) { b.Passages[0].Reference = " " }, false},
		{"empty text", func(b *Batch) { b.Passages[1].Text = "" }, false},
		{"empty text not wanted", func(b *Batch) { b.Passages[1].Text = ""; b.WantText = false }, true},
		{"missing question", func(b *Batch) { b.Passages[2].ContextQuestion = nil }, false},
		{"missing question not wanted", func(b *Batch) {
			b.Passages[2].ContextQuestion = nil
			b.WantQuestion = false
		}, true},
		{"three options", func(b *Batch) { b.Passages[0].ContextQuestion.Options = []string{"a", "b", "c"} }, false},
		{"index too high", func(b *Batch) { b.Passages[0].ContextQuestion.CorrectIndex = 4 }, false},
		{"negative index", func(b *Batch) { b.Passages[0].ContextQuestion.CorrectIndex = -1 }, false},
		{"empty question", func(b *Batch) { b.Passages[0].ContextQuestion.Question = "" }, false},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBatch()
			tt.mutate(b)
			err := v.Validate(b)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDistinctValidator(t *testing.T) {
	v := &DistinctValidator{}
	b := validBatch()
	if err := v.Validate(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.Passages[2].Reference = "john 3:16 "
	err := v.Validate(b)
	if err == nil {
		t.Fatal("expected duplicate reference error")
	}
	if err.Validator != "distinct" {
		t.Errorf("unexpected validator: %q", err.Validator)
	}
}
