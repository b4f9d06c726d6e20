package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore limits a write batch to 500 operations.
const firestoreBatchLimit = 500

type FirestoreStore struct {
	Client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{Client: client}
}

func (s *FirestoreStore) collection(name string) (*firestore.CollectionRef, error) {
	ref := s.Client.Collection(name)
	if ref == nil {
		return nil, fmt.Errorf("invalid collection path %q", name)
	}
	return ref, nil
}

func (s *FirestoreStore) doc(collection, id string) (*firestore.DocumentRef, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}
	ref := coll.Doc(id)
	if ref == nil {
		return nil, fmt.Errorf("invalid document id %q", id)
	}
	return ref, nil
}

func collectDocs(iter *firestore.DocumentIterator) ([]Document, error) {
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	ref, err := s.doc(collection, id)
	if err != nil {
		return nil, err
	}
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *FirestoreStore) GetAll(ctx context.Context, collection string) ([]Document, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}
	return collectDocs(coll.Documents(ctx))
}

func (s *FirestoreStore) Query(ctx context.Context, collection string, q Query) ([]Document, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}
	query := coll.Query
	for _, c := range q.Conditions {
		query = query.Where(c.Field, c.Operator, c.Value)
	}
	for _, o := range q.OrderBy {
		dir := firestore.Asc
		if o.Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(o.Field, dir)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	return collectDocs(query.Documents(ctx))
}

func (s *FirestoreStore) Add(ctx context.Context, collection string, data interface{}) (string, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return "", err
	}
	ref, _, err := coll.Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Set(ctx context.Context, collection, id string, data interface{}) error {
	ref, err := s.doc(collection, id)
	if err != nil {
		return err
	}
	_, err = ref.Set(ctx, data)
	return err
}

func (s *FirestoreStore) Merge(ctx context.Context, collection, id string, data map[string]interface{}) error {
	ref, err := s.doc(collection, id)
	if err != nil {
		return err
	}
	_, err = ref.Set(ctx, data, firestore.MergeAll)
	return err
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	ref, err := s.doc(collection, id)
	if err != nil {
		return err
	}
	updates := make([]firestore.Update, 0, len(fields))
	for field, v := range fields {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{field}, Value: v})
	}
	if _, err := ref.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrDocumentNotFound
		}
		return err
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	ref, err := s.doc(collection, id)
	if err != nil {
		return err
	}
	_, err = ref.Delete(ctx)
	return err
}

func (s *FirestoreStore) ArrayUnion(ctx context.Context, collection, id, field string, values ...interface{}) error {
	return s.Merge(ctx, collection, id, map[string]interface{}{field: firestore.ArrayUnion(values...)})
}

func (s *FirestoreStore) ArrayRemove(ctx context.Context, collection, id, field string, values ...interface{}) error {
	return s.Merge(ctx, collection, id, map[string]interface{}{field: firestore.ArrayRemove(values...)})
}

func (s *FirestoreStore) BatchMerge(ctx context.Context, collection string, ids []string, data map[string]interface{}) error {
	for start := 0; start < len(ids); start += firestoreBatchLimit {
		end := start + firestoreBatchLimit
		if end > len(ids) {
			end = len(ids)
		}

		batch := s.Client.Batch()
		for _, id := range ids[start:end] {
			ref, err := s.doc(collection, id)
			if err != nil {
				return err
			}
			batch.Set(ref, data, firestore.MergeAll)
		}
		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("commit batch %d-%d: %w", start, end, err)
		}
	}
	return nil
}
