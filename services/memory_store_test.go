package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    string    `firestore:"-"`
	Name  string    `firestore:"name"`
	Count int       `firestore:"count"`
	Tags  []string  `firestore:"tags"`
	At    time.Time `firestore:"at"`
	Note  string    `firestore:"note,omitempty"`
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "things", "a")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	seed(t, store, "things", "a", sample{ID: "ignored", Name: "alpha", Count: 2, Tags: []string{"x"}, At: testNow})

	doc, err := store.Get(ctx, "things", "a")
	require.NoError(t, err)
	assert.Equal(t, "a", doc.ID)
	assert.Equal(t, "alpha", doc.Data["name"])
	assert.Equal(t, int64(2), doc.Data["count"])
	assert.Equal(t, []interface{}{"x"}, doc.Data["tags"])
	assert.NotContains(t, doc.Data, "ID")
	assert.NotContains(t, doc.Data, "note")

	var got sample
	require.NoError(t, doc.DataTo(&got))
	assert.Equal(t, "alpha", got.Name)
	assert.True(t, testNow.Equal(got.At))

	// returned data is a copy
	doc.Data["name"] = "changed"
	again, _ := store.Get(ctx, "things", "a")
	assert.Equal(t, "alpha", again.Data["name"])

	require.NoError(t, store.Delete(ctx, "things", "a"))
	_, err = store.Get(ctx, "things", "a")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestMemoryStore_Add(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id, err := store.Add(ctx, "things", map[string]interface{}{"name": "beta"})
	require.NoError(t, err)
	assert.Len(t, id, 32)

	_, err = store.Add(ctx, "things", "not a document")
	assert.Error(t, err)
}

func TestMemoryStore_MergeIsDeep(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	seed(t, store, "orders", "o1", map[string]interface{}{
		"status": map[string]interface{}{"ordered": map[string]interface{}{"message": "placed"}},
		"total":  10,
	})

	require.NoError(t, store.Merge(ctx, "orders", "o1", map[string]interface{}{
		"status": map[string]interface{}{"accepted": map[string]interface{}{"message": "ok"}},
	}))

	doc, err := store.Get(ctx, "orders", "o1")
	require.NoError(t, err)
	status := doc.Data["status"].(map[string]interface{})
	assert.Contains(t, status, "ordered")
	assert.Contains(t, status, "accepted")
	assert.Equal(t, int64(10), doc.Data["total"])

	// merge creates missing documents
	require.NoError(t, store.Merge(ctx, "orders", "o2", map[string]interface{}{"total": 5}))
	_, err = store.Get(ctx, "orders", "o2")
	assert.NoError(t, err)
}

func TestMemoryStore_Query(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	seed(t, store, "stores", "s1", map[string]interface{}{"name": "A", "rank": 3, "isPaused": false, "tags": []string{"veg"}})
	seed(t, store, "stores", "s2", map[string]interface{}{"name": "B", "rank": 1, "isPaused": true, "tags": []string{"nonVeg"}})
	seed(t, store, "stores", "s3", map[string]interface{}{"name": "C", "rank": 2, "isPaused": false})
	seed(t, store, "stores", "s4", map[string]interface{}{"name": "D", "isPaused": false, "nested": map[string]interface{}{"on": true}})

	ids := func(docs []Document) []string {
		out := make([]string, 0, len(docs))
		for _, d := range docs {
			out = append(out, d.ID)
		}
		return out
	}

	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{"all in id order", Query{}, []string{"s1", "s2", "s3", "s4"}},
		{"equality", Query{Conditions: []Condition{Where("isPaused", "==", false)}}, []string{"s1", "s3", "s4"}},
		{"range", Query{Conditions: []Condition{Where("rank", ">=", 2)}}, []string{"s1", "s3"}},
		{"in", Query{Conditions: []Condition{Where("name", "in", []string{"B", "D"})}}, []string{"s2", "s4"}},
		{"not-in skips missing", Query{Conditions: []Condition{Where("rank", "not-in", []int{3})}}, []string{"s2", "s3"}},
		{"array-contains", Query{Conditions: []Condition{Where("tags", "array-contains", "veg")}}, []string{"s1"}},
		{"array-contains-any", Query{Conditions: []Condition{Where("tags", "array-contains-any", []string{"veg", "nonVeg"})}}, []string{"s1", "s2"}},
		{"dotted path", Query{Conditions: []Condition{Where("nested.on", "==", true)}}, []string{"s4"}},
		{"not null", Query{Conditions: []Condition{Where("nested", "!=", nil)}}, []string{"s4"}},
		{"order drops docs without field", Query{OrderBy: []OrderBy{{Field: "rank", Desc: true}}}, []string{"s1", "s3", "s2"}},
		{"limit", Query{OrderBy: []OrderBy{{Field: "rank"}}, Limit: 2}, []string{"s2", "s3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := store.Query(ctx, "stores", tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(docs))
		})
	}
}

func TestMemoryStore_Arrays(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.ArrayUnion(ctx, "featured", "doc", "stores", "a", "b"))
	require.NoError(t, store.ArrayUnion(ctx, "featured", "doc", "stores", "b", "c"))
	doc, err := store.Get(ctx, "featured", "doc")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a", "b", "c"}, doc.Data["stores"])

	require.NoError(t, store.ArrayRemove(ctx, "featured", "doc", "stores", "b", "missing"))
	doc, _ = store.Get(ctx, "featured", "doc")
	assert.Equal(t, []interface{}{"a", "c"}, doc.Data["stores"])
}

func TestMemoryStore_BatchMerge(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	seed(t, store, "stores", "s1", map[string]interface{}{"isActive": false, "name": "A"})
	seed(t, store, "stores", "s2", map[string]interface{}{"isActive": false, "name": "B"})

	require.NoError(t, store.BatchMerge(ctx, "stores", []string{"s1", "s2"}, map[string]interface{}{"isActive": true}))

	docs, err := store.Query(ctx, "stores", Query{Conditions: []Condition{Where("isActive", "==", true)}})
	require.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Equal(t, "A", docs[0].Data["name"])
}

func TestMemoryStore_Update(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	seed(t, store, "products", "p1", map[string]interface{}{
		"name":       "Momo",
		"legacyCode": "M-7",
		"variations": map[string]interface{}{
			"half": map[string]interface{}{"price": 60},
			"full": map[string]interface{}{"price": 100},
		},
	})

	require.NoError(t, store.Update(ctx, "products", "p1", map[string]interface{}{
		"name":       "Veg Momo",
		"variations": map[string]interface{}{"plate": map[string]interface{}{"price": 90}},
	}))

	doc, err := store.Get(ctx, "products", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Veg Momo", doc.Data["name"])
	assert.Equal(t, "M-7", doc.Data["legacyCode"], "fields not named are kept")
	variations := doc.Data["variations"].(map[string]interface{})
	assert.Len(t, variations, 1, "a named field is replaced, not merged")
	assert.Contains(t, variations, "plate")

	err = store.Update(ctx, "products", "ghost", map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
