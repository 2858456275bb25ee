package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapArrayBare(t *testing.T) {
	payload := []any{
		map[string]any{"id": "1"},
		map[string]any{"id": "2"},
	}
	got := UnwrapArray(payload, "recipes")
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0]["id"])
}

func TestUnwrapArrayDataEnvelope(t *testing.T) {
	payload := map[string]any{"data": []any{map[string]any{"id": "1"}}}
	assert.Len(t, UnwrapArray(payload), 1)
}

func TestUnwrapArrayCollectionKey(t *testing.T) {
	payload := map[string]any{"likes": []any{map[string]any{"id": "9"}}}
	got := UnwrapArray(payload, "likes")
	assert.Len(t, got, 1)
	assert.Equal(t, "9", got[0]["id"])
}

func TestUnwrapArrayShapeMismatch(t *testing.T) {
	assert.Empty(t, UnwrapArray(map[string]any{"data": "oops"}))
	assert.Empty(t, UnwrapArray("not json shapes"))
	assert.Empty(t, UnwrapArray(nil))
}

func TestUnwrapArraySkipsNonObjectItems(t *testing.T) {
	payload := []any{map[string]any{"id": "1"}, "junk", float64(3)}
	assert.Len(t, UnwrapArray(payload), 1)
}

func TestUnwrapObjectNested(t *testing.T) {
	payload := map[string]any{"data": map[string]any{"id": "1"}}
	assert.Equal(t, "1", UnwrapObject(payload)["id"])

	payload = map[string]any{"category": map[string]any{"id": "c1"}}
	assert.Equal(t, "c1", UnwrapObject(payload, "category")["id"])
}

func TestUnwrapObjectFlat(t *testing.T) {
	payload := map[string]any{"id": "1", "title": "Pasta"}
	assert.Equal(t, "Pasta", UnwrapObject(payload, "recipe")["title"])
}

func TestUnwrapObjectNonObject(t *testing.T) {
	assert.Nil(t, UnwrapObject([]any{}))
	assert.Nil(t, UnwrapObject(nil))
}
