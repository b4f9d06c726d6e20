package services

import (
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// userFetchLimit bounds concurrent single-document reads.
const userFetchLimit = 8

type UserService struct {
	Store DocumentStore
}

func NewUserService(store DocumentStore) *UserService {
	return &UserService{Store: store}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	docs, err := s.Store.GetAll(ctx, CollectionUsers)
	if err != nil {
		return nil, utils.Internal("Failed to fetch users", err)
	}
	users, err := decodeDocs(docs, func(u *models.User, id string) { u.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse users", err)
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

// GetUsers reads the given user documents concurrently. Ids without a
// document are left out of the result.
func (s *UserService) GetUsers(ctx context.Context, ids []string) (map[string]models.User, error) {
	var mu sync.Mutex
	users := make(map[string]models.User, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(userFetchLimit)
	for _, id := range uniqueNonEmpty(ids) {
		id := id
		g.Go(func() error {
			doc, err := s.Store.Get(ctx, CollectionUsers, id)
			if errors.Is(err, ErrDocumentNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			var u models.User
			if err := doc.DataTo(&u); err != nil {
				return err
			}
			u.ID = doc.ID

			mu.Lock()
			users[id] = u
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, utils.Internal("Failed to fetch users", err)
	}
	return users, nil
}

// Customers are the users that placed at least one order.
func (s *UserService) Customers(ctx context.Context) ([]models.User, error) {
	docs, err := s.Store.GetAll(ctx, CollectionOrders)
	if err != nil {
		return nil, utils.Internal("Failed to fetch orders", err)
	}
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		if id, ok := doc.Data["userId"].(string); ok {
			ids = append(ids, id)
		}
	}

	byID, err := s.GetUsers(ctx, ids)
	if err != nil {
		return nil, err
	}
	customers := make([]models.User, 0, len(byID))
	for _, u := range byID {
		customers = append(customers, u)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].ID < customers[j].ID
	})
	return customers, nil
}

// Growth counts sign-ups per calendar month of the range. Cumulative is the
// total number of users created up to the end of that month.
func (s *UserService) Growth(ctx context.Context, r utils.DateRange) ([]models.MonthlyGrowth, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	loc := r.From.Location()
	first := time.Date(r.From.Year(), r.From.Month(), 1, 0, 0, 0, 0, loc)
	last := time.Date(r.To.Year(), r.To.Month(), 1, 0, 0, 0, 0, loc)

	var growth []models.MonthlyGrowth
	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		end := month.AddDate(0, 1, 0)
		g := models.MonthlyGrowth{Month: month.Format("2006-01")}
		for _, u := range users {
			if u.CreatedAt.IsZero() {
				continue
			}
			created := u.CreatedAt.In(loc)
			if created.Before(end) {
				g.Cumulative++
			}
			if !created.Before(month) && created.Before(end) && r.Contains(created) {
				g.SignUps++
			}
		}
		growth = append(growth, g)
	}
	return growth, nil
}

func (s *UserService) PendingCreators(ctx context.Context) ([]models.Creator, error) {
	return s.creators(ctx, "isWaiting")
}

func (s *UserService) VerifiedCreators(ctx context.Context) ([]models.Creator, error) {
	return s.creators(ctx, "isCreator")
}

// creators lists users with flag set, each joined with its waiting-list
// request when one exists. Users without a uid are skipped.
func (s *UserService) creators(ctx context.Context, flag string) ([]models.Creator, error) {
	docs, err := s.Store.Query(ctx, CollectionUsers, Query{
		Conditions: []Condition{Where(flag, "==", true)},
	})
	if err != nil {
		return nil, utils.Internal("Failed to fetch creators", err)
	}
	users, err := decodeDocs(docs, func(u *models.User, id string) { u.ID = id })
	if err != nil {
		return nil, utils.Internal("Failed to parse creators", err)
	}

	var withUID []models.User
	for _, u := range users {
		if u.UID != "" {
			withUID = append(withUID, u)
		}
	}

	creators := make([]models.Creator, len(withUID))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(userFetchLimit)
	for i, u := range withUID {
		i, u := i, u
		g.Go(func() error {
			reqs, err := s.Store.Query(gctx, CollectionCreatorRequests, Query{
				Conditions: []Condition{Where("userId", "==", u.UID)},
				Limit:      1,
			})
			if err != nil {
				return err
			}
			creators[i] = models.Creator{User: u}
			if len(reqs) > 0 {
				var req models.CreatorRequest
				if err := reqs[0].DataTo(&req); err != nil {
					return err
				}
				creators[i].Request = &req
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, utils.Internal("Failed to fetch creator requests", err)
	}
	return creators, nil
}

func (s *UserService) ApproveCreator(ctx context.Context, userID string) error {
	return s.setCreator(ctx, userID, true)
}

func (s *UserService) RemoveCreator(ctx context.Context, userID string) error {
	return s.setCreator(ctx, userID, false)
}

func (s *UserService) setCreator(ctx context.Context, userID string, creator bool) error {
	if err := ensureExists(ctx, s.Store, CollectionUsers, userID, "User"); err != nil {
		return err
	}
	err := s.Store.Merge(ctx, CollectionUsers, userID, map[string]interface{}{
		"isCreator": creator,
		"isWaiting": false,
	})
	if err != nil {
		return utils.Internal("Failed to update user", err)
	}
	return nil
}

func uniqueNonEmpty(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
