package models

import "time"

// OrderFilter is the full set of dashboard filter inputs. Date bounds are
// inclusive at day granularity. Categories and Cities are allow-sets: an
// empty set keeps nothing, so callers that mean "no restriction" must pass
// the full discovered set (the dashboard's default-everything multiselects).
type OrderFilter struct {
	DateFrom   time.Time
	DateTo     time.Time
	Categories map[string]struct{}
	Cities     map[string]struct{}
}

// FilterMetadata bootstraps the dashboard sidebar: discovered date bounds
// and the distinct category/city vocabularies of the loaded dataset, plus
// when that dataset was read from the store.
type FilterMetadata struct {
	DateMin            time.Time `json:"date_min"`
	DateMax            time.Time `json:"date_max"`
	Categories         []string  `json:"categories"`
	Cities             []string  `json:"cities"`
	OrderHourAvailable bool      `json:"order_hour_available"`
	DatasetLoadedAt    time.Time `json:"dataset_loaded_at"`
}
