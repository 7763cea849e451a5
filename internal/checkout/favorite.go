package checkout

import (
	"context"
	"fmt"
)

// FavoriteState is whether the food on screen is marked as favorite.
type FavoriteState int

const (
	NotFavorite FavoriteState = iota
	Favorite
)

func (f FavoriteState) String() string {
	if f == Favorite {
		return "favorite"
	}
	return "not_favorite"
}

// Icon is the header icon name for the state.
func (f FavoriteState) Icon() string {
	if f == Favorite {
		return "favorite"
	}
	return "favorite-border"
}

func (s *FoodDetails) FavoriteState() FavoriteState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorite
}

func (s *FoodDetails) IsFavorite() bool {
	return s.FavoriteState() == Favorite
}

func (s *FoodDetails) FavoriteIcon() string {
	return s.FavoriteState().Icon()
}

// ToggleFavorite flips the favorite mark. The remote collection is checked
// by name first: marking never creates a duplicate record and unmarking a
// food with no record just clears the local state. The check and the
// create/delete are separate requests, so concurrent toggles may race.
// On failure the local state is left unchanged.
func (s *FoodDetails) ToggleFavorite(ctx context.Context) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	gen := s.generation
	food := s.food
	want := Favorite
	if s.favorite == Favorite {
		want = NotFavorite
	}
	s.mu.Unlock()

	favorites, err := s.deps.Provider.FindFavorites(ctx, food.Name)
	if err != nil {
		return s.favoriteFailed(food.Name, "check", err)
	}

	switch want {
	case Favorite:
		if len(favorites) == 0 {
			if _, err := s.deps.Provider.CreateFavorite(ctx, food); err != nil {
				return s.favoriteFailed(food.Name, "create", err)
			}
		}
	case NotFavorite:
		if len(favorites) > 0 {
			if err := s.deps.Provider.DeleteFavorite(ctx, favorites[0].ID); err != nil {
				return s.favoriteFailed(food.Name, "delete", err)
			}
		}
	}

	s.deps.Logger.Debug("Favorite toggled", "food", food.Name, "state", want.String())
	return s.setFavorite(gen, want)
}

func (s *FoodDetails) favoriteFailed(name, step string, err error) error {
	s.deps.Logger.Warn("Favorite toggle failed", "food", name, "step", step, "error", err)
	s.deps.Notifier.Alert(MsgFavoriteFailed)
	return fmt.Errorf("%s favorite %q: %w", step, name, err)
}

func (s *FoodDetails) setFavorite(gen uint64, state FavoriteState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(gen) {
		return ErrStale
	}
	s.favorite = state
	s.touch()
	return nil
}
