package note

// ToggleFavorite flips the favorite mark of the note with the given id and
// returns the new state. Ids absent from the collection are ignored (ok is
// false) so the set only ever references existing notes.
func (b *Board) ToggleFavorite(id int) (favorite, ok bool) {
	if b.indexOf(id) < 0 {
		return false, false
	}
	if _, on := b.favorites[id]; on {
		delete(b.favorites, id)
	} else {
		b.favorites[id] = struct{}{}
		favorite = true
	}
	b.logFavorites()
	return favorite, true
}

// IsFavorite reports whether the note with the given id is a favorite.
func (b *Board) IsFavorite(id int) bool {
	_, ok := b.favorites[id]
	return ok
}

// Favorites returns the favorite notes in collection order.
func (b *Board) Favorites() []Note {
	var out []Note
	for _, n := range b.notes {
		if _, ok := b.favorites[n.ID]; ok {
			out = append(out, n)
		}
	}
	return out
}

// FavoriteIDs returns the favorite ids in collection order.
func (b *Board) FavoriteIDs() []int {
	ids := make([]int, 0, len(b.favorites))
	for _, n := range b.notes {
		if _, ok := b.favorites[n.ID]; ok {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

func (b *Board) logFavorites() {
	b.logger.Debug("favorites updated", "ids", b.FavoriteIDs())
}
