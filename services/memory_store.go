package services

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process DocumentStore used for local development and
// tests. Values are normalised to the shapes Firestore hands back: structs
// become maps keyed by their firestore tags, slices become []interface{}.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]map[string]interface{})}
}

func (s *MemoryStore) coll(name string) map[string]map[string]interface{} {
	c, ok := s.collections[name]
	if !ok {
		c = make(map[string]map[string]interface{})
		s.collections[name] = c
	}
	return c
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return &Document{ID: id, Data: copyMap(data)}, nil
}

func (s *MemoryStore) GetAll(ctx context.Context, collection string) ([]Document, error) {
	return s.Query(ctx, collection, Query{})
}

func (s *MemoryStore) Query(_ context.Context, collection string, q Query) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for id, data := range s.collections[collection] {
		if !matchesAll(data, q.Conditions) {
			continue
		}
		if !hasOrderFields(data, q.OrderBy) {
			continue
		}
		docs = append(docs, Document{ID: id, Data: copyMap(data)})
	}

	// Firestore returns documents in id order unless told otherwise.
	sort.Slice(docs, func(i, j int) bool {
		for _, o := range q.OrderBy {
			a, _ := lookup(docs[i].Data, o.Field)
			b, _ := lookup(docs[j].Data, o.Field)
			c, _ := compareValues(a, b)
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return docs[i].ID < docs[j].ID
	})

	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func (s *MemoryStore) Add(_ context.Context, collection string, data interface{}) (string, error) {
	m, err := toMap(data)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	s.coll(collection)[id] = m
	return id, nil
}

func (s *MemoryStore) Set(_ context.Context, collection, id string, data interface{}) error {
	if id == "" {
		return fmt.Errorf("invalid document id %q", id)
	}
	m, err := toMap(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.coll(collection)[id] = m
	return nil
}

func (s *MemoryStore) Merge(_ context.Context, collection, id string, data map[string]interface{}) error {
	if id == "" {
		return fmt.Errorf("invalid document id %q", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mergeLocked(collection, id, data)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.coll(collection)[id]
	if !ok {
		return ErrDocumentNotFound
	}
	for field, v := range normalize(reflect.ValueOf(fields)).(map[string]interface{}) {
		doc[field] = v
	}
	return nil
}

func (s *MemoryStore) mergeLocked(collection, id string, data map[string]interface{}) {
	c := s.coll(collection)
	existing, ok := c[id]
	if !ok {
		existing = make(map[string]interface{})
		c[id] = existing
	}
	deepMerge(existing, normalize(reflect.ValueOf(data)).(map[string]interface{}))
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func (s *MemoryStore) ArrayUnion(_ context.Context, collection, id, field string, values ...interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.docLocked(collection, id)
	current, _ := doc[field].([]interface{})
	for _, v := range values {
		v = normalize(reflect.ValueOf(v))
		if !containsValue(current, v) {
			current = append(current, v)
		}
	}
	if current == nil {
		current = []interface{}{}
	}
	doc[field] = current
	return nil
}

func (s *MemoryStore) ArrayRemove(_ context.Context, collection, id, field string, values ...interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.docLocked(collection, id)
	current, _ := doc[field].([]interface{})
	kept := make([]interface{}, 0, len(current))
	for _, v := range current {
		remove := false
		for _, r := range values {
			if valuesEqual(v, normalize(reflect.ValueOf(r))) {
				remove = true
				break
			}
		}
		if !remove {
			kept = append(kept, v)
		}
	}
	doc[field] = kept
	return nil
}

func (s *MemoryStore) docLocked(collection, id string) map[string]interface{} {
	c := s.coll(collection)
	doc, ok := c[id]
	if !ok {
		doc = make(map[string]interface{})
		c[id] = doc
	}
	return doc
}

func (s *MemoryStore) BatchMerge(_ context.Context, collection string, ids []string, data map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		s.mergeLocked(collection, id, data)
	}
	return nil
}

func matchesAll(data map[string]interface{}, conds []Condition) bool {
	for _, c := range conds {
		if !matches(data, c) {
			return false
		}
	}
	return true
}

func hasOrderFields(data map[string]interface{}, order []OrderBy) bool {
	for _, o := range order {
		if _, ok := lookup(data, o.Field); !ok {
			return false
		}
	}
	return true
}

func matches(data map[string]interface{}, c Condition) bool {
	v, ok := lookup(data, c.Field)
	if !ok {
		return false
	}
	want := normalize(reflect.ValueOf(c.Value))

	switch c.Operator {
	case "==":
		return valuesEqual(v, want)
	case "!=":
		return v != nil && !valuesEqual(v, want)
	case "<", "<=", ">", ">=":
		cmp, ok := compareValues(v, want)
		if !ok {
			return false
		}
		switch c.Operator {
		case "<":
			return cmp < 0
		case "<=":
			return cmp <= 0
		case ">":
			return cmp > 0
		default:
			return cmp >= 0
		}
	case "in":
		list, _ := want.([]interface{})
		return containsValue(list, v)
	case "not-in":
		list, _ := want.([]interface{})
		return v != nil && !containsValue(list, v)
	case "array-contains":
		arr, _ := v.([]interface{})
		return containsValue(arr, want)
	case "array-contains-any":
		arr, _ := v.([]interface{})
		list, _ := want.([]interface{})
		for _, w := range list {
			if containsValue(arr, w) {
				return true
			}
		}
		return false
	}
	return false
}

// lookup resolves a dotted field path.
func lookup(data map[string]interface{}, path string) (interface{}, bool) {
	var cur interface{} = data
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func containsValue(list []interface{}, v interface{}) bool {
	for _, item := range list {
		if valuesEqual(item, v) {
			return true
		}
	}
	return false
}

func valuesEqual(a, b interface{}) bool {
	if c, ok := compareValues(a, b); ok {
		return c == 0
	}
	return reflect.DeepEqual(a, b)
}

// compareValues orders numbers, strings, times and bools. ok is false for
// values of different kinds.
func compareValues(a, b interface{}) (int, bool) {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		}
		return 0, true
	}
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(x, y), true
	case time.Time:
		y, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return x.Compare(y), true
	case bool:
		y, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case x == y:
			return 0, true
		case !x:
			return -1, true
		}
		return 1, true
	}
	return 0, false
}

func deepMerge(dst, src map[string]interface{}) {
	for k, v := range src {
		if sm, ok := v.(map[string]interface{}); ok {
			if dm, ok := dst[k].(map[string]interface{}); ok {
				deepMerge(dm, sm)
				continue
			}
		}
		dst[k] = v
	}
}

func toMap(data interface{}) (map[string]interface{}, error) {
	m, ok := normalize(reflect.ValueOf(data)).(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("document data must be a struct or map, got %T", data)
	}
	return m, nil
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	return normalize(reflect.ValueOf(m)).(map[string]interface{})
}

// normalize deep-copies v into plain maps, slices and scalars. Struct fields
// follow the firestore tag; "-" and unexported fields are skipped.
func normalize(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	if v.Type() == timeType {
		return v.Interface()
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return normalize(v.Elem())
	case reflect.Struct:
		out := make(map[string]interface{}, v.NumField())
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, opts, _ := strings.Cut(f.Tag.Get("firestore"), ",")
			if name == "-" {
				continue
			}
			if name == "" {
				name = f.Name
			}
			fv := v.Field(i)
			if strings.Contains(opts, "omitempty") && fv.IsZero() {
				continue
			}
			out[name] = normalize(fv)
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		out := make(map[string]interface{}, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = normalize(iter.Value())
		}
		return out
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil
		}
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return append([]byte(nil), v.Bytes()...)
		}
		out := make([]interface{}, v.Len())
		for i := range out {
			out[i] = normalize(v.Index(i))
		}
		return out
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	}
	return v.Interface()
}
