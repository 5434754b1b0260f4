package service

import (
	"cmp"
	"slices"
)

type CatalogHabit struct {
	Name     string
	Category string
}

var habitCatalog = []CatalogHabit{
	{"Morning Meditation", "Mindfulness"},
	{"Daily Exercise", "Fitness"},
	{"Reading", "Education"},
	{"Journaling", "Mindfulness"},
	{"Drinking Water", "Health"},
	{"Healthy Eating", "Health"},
	{"Walking", "Fitness"},
	{"Yoga", "Fitness"},
	{"Coding Practice", "Skill"},
	{"Learning a New Language", "Education"},
	{"Socializing", "Social"},
	{"Gratitude Practice", "Mindfulness"},
	{"Time Management", "Productivity"},
	{"No Social Media Before Bed", "Digital Detox"},
	{"Sleeping Early", "Health"},
}

var defaultRecommender = NewRecommender(habitCatalog, 3)

// Recommender suggests catalog habits whose category code is nearest to the
// categories of habits already completed. Codes are category positions in
// alphabetical order.
type Recommender struct {
	catalog   []CatalogHabit
	codes     []int
	neighbors int
}

func NewRecommender(catalog []CatalogHabit, neighbors int) *Recommender {
	categories := make([]string, 0, len(catalog))
	for _, h := range catalog {
		categories = append(categories, h.Category)
	}
	slices.Sort(categories)
	categories = slices.Compact(categories)
	codes := make([]int, len(catalog))
	for i, h := range catalog {
		codes[i], _ = slices.BinarySearch(categories, h.Category)
	}
	return &Recommender{
		catalog:   catalog,
		codes:     codes,
		neighbors: neighbors,
	}
}

// Recommend returns suggestions in catalog order. Names outside the catalog are ignored.
func (r *Recommender) Recommend(completed []string) []string {
	done := make(map[string]struct{}, len(completed))
	for _, name := range completed {
		done[name] = struct{}{}
	}
	picked := make([]bool, len(r.catalog))
	for i, h := range r.catalog {
		if _, ok := done[h.Name]; !ok {
			continue
		}
		for _, j := range r.nearest(r.codes[i]) {
			if _, ok := done[r.catalog[j].Name]; !ok {
				picked[j] = true
			}
		}
	}
	out := []string{}
	for i, ok := range picked {
		if ok {
			out = append(out, r.catalog[i].Name)
		}
	}
	return out
}

// nearest ranks catalog entries by code distance; equal distances keep catalog order
func (r *Recommender) nearest(code int) []int {
	idx := make([]int, len(r.catalog))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(abs(r.codes[a]-code), abs(r.codes[b]-code))
	})
	return idx[:min(r.neighbors, len(idx))]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
