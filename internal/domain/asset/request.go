package asset

// Request declares what a single load call should fetch, one id→url map
// per category. A nil or empty map means the category is absent from the
// request and contributes no progress weight. Requests are ephemeral:
// built per load call and not retained.
type Request struct {
	Images map[string]string
	Sounds map[string]string
	Fonts  map[string]string
	Sheets map[string]string
}

// Empty reports whether the request names no assets at all.
func (r Request) Empty() bool {
	return len(r.Images) == 0 && len(r.Sounds) == 0 && len(r.Fonts) == 0 && len(r.Sheets) == 0
}

// Categories returns the categories with at least one entry, in a fixed
// order. The length of the result determines the per-category progress
// weight split.
func (r Request) Categories() []Category {
	var cats []Category
	if len(r.Images) > 0 {
		cats = append(cats, CategoryImage)
	}
	if len(r.Sounds) > 0 {
		cats = append(cats, CategorySound)
	}
	if len(r.Fonts) > 0 {
		cats = append(cats, CategoryFont)
	}
	if len(r.Sheets) > 0 {
		cats = append(cats, CategorySpritesheet)
	}
	return cats
}

// Add places an id→url pair into the map for the given category.
// Unknown-category entries are ignored; they are never loadable.
func (r *Request) Add(e Entry) {
	switch e.Category {
	case CategoryImage:
		if r.Images == nil {
			r.Images = make(map[string]string)
		}
		r.Images[e.ID] = e.URL
	case CategorySound:
		if r.Sounds == nil {
			r.Sounds = make(map[string]string)
		}
		r.Sounds[e.ID] = e.URL
	case CategoryFont:
		if r.Fonts == nil {
			r.Fonts = make(map[string]string)
		}
		r.Fonts[e.ID] = e.URL
	case CategorySpritesheet:
		if r.Sheets == nil {
			r.Sheets = make(map[string]string)
		}
		r.Sheets[e.ID] = e.URL
	}
}
