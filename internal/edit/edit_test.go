package edit

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	e, err := New(Span{4, 9}, "slow", WithNote("word choice"), WithAuthor("reviewer-1"))
	require.NoError(t, err)

	_, err = uuid.Parse(e.ID)
	assert.NoError(t, err, "generated ID should be a UUID")
	assert.Equal(t, Span{4, 9}, e.Span)
	assert.Equal(t, "slow", e.Replacement)
	assert.Equal(t, "word choice", e.Note)
	assert.Equal(t, "reviewer-1", e.Author)

	e2, err := New(Span{0, 0}, "x", WithID("fixed"))
	require.NoError(t, err)
	assert.Equal(t, "fixed", e2.ID)
}

func TestNew_InvalidRange(t *testing.T) {
	_, err := New(Span{5, 4}, "x")
	assert.ErrorIs(t, err, ErrRangeInvalid)

	_, err = New(Span{-1, 4}, "x")
	assert.ErrorIs(t, err, ErrRangeInvalid)
}

func TestEdit_Validate(t *testing.T) {
	text := "The quick brown fox"

	assert.NoError(t, Edit{ID: "a", Span: Span{0, len(text)}}.Validate(text))
	assert.ErrorIs(t, Edit{ID: "b", Span: Span{0, len(text) + 1}}.Validate(text), ErrOffsetOutOfRange)
	assert.ErrorIs(t, Edit{ID: "c", Span: Span{3, 2}}.Validate(text), ErrRangeInvalid)
}

func TestEdit_UpdatesKeepID(t *testing.T) {
	e := Edit{ID: "e1", Span: Span{0, 3}, Replacement: "A"}

	updated := e.WithReplacement("An").WithNote("article").WithSpan(Span{0, 4})
	assert.Equal(t, Edit{ID: "e1", Span: Span{0, 4}, Replacement: "An", Note: "article"}, updated)
	assert.Equal(t, "A", e.Replacement, "original value must not change")
}

func TestEdit_String(t *testing.T) {
	assert.Equal(t, `Insert(3, "x")`, Edit{Span: Span{3, 3}, Replacement: "x"}.String())
	assert.Equal(t, "Delete[3:5)", Edit{Span: Span{3, 5}}.String())
	assert.Equal(t, `Replace[3:5) with "x"`, Edit{Span: Span{3, 5}, Replacement: "x"}.String())
}

func TestEdit_IsNoOp(t *testing.T) {
	text := "The quick brown fox"
	assert.True(t, Edit{Span: Span{4, 9}, Replacement: "quick"}.IsNoOp(text))
	assert.False(t, Edit{Span: Span{4, 9}, Replacement: "slow"}.IsNoOp(text))
}

func TestNewCorrection(t *testing.T) {
	text := "The quick brown fox"
	e := Edit{ID: "c1", Span: Span{10, 15}, Replacement: "red", Note: "color"}

	c := NewCorrection(text, e)
	assert.Equal(t, "brown", c.Original)
	assert.Equal(t, e, c.Edit)

	stale := NewCorrection(text, Edit{ID: "c2", Span: Span{16, 40}})
	assert.Equal(t, "fox", stale.Original)

	all := NewCorrections(text, []Edit{e, {ID: "c3", Span: Span{0, 3}}})
	require.Len(t, all, 2)
	assert.Equal(t, "The", all[1].Original)
}

func TestOverlapError(t *testing.T) {
	err := error(&OverlapError{A: Edit{ID: "a", Span: Span{0, 5}}, B: Edit{ID: "b", Span: Span{3, 7}}})

	assert.True(t, errors.Is(err, ErrEditsOverlap))
	assert.Equal(t, "edit a [0:5) overlaps edit b [3:7)", err.Error())
}
