// Package corridorio is corridor's external JSON interface, per spec.md
// §6: a Query decoded per search request and a Response encoded once the
// search (and its backtracked route) completes. It is a pure
// marshalling layer — it owns no model state and performs no search
// itself.
package corridorio

import "github.com/routeforge/corridor/roadnet"

// Query is the input to one core search, decoded from the request body
// of a batch job or an interactive CLI invocation. Extra JSON fields are
// allowed and ignored by the core, per spec.md §6.
type Query struct {
	OriginVertex      roadnet.VertexId  `json:"origin_vertex"`
	DestinationVertex *roadnet.VertexId `json:"destination_vertex,omitempty"`

	ModelName       string             `json:"model_name,omitempty"`
	Weights         map[string]float64 `json:"weights,omitempty"`
	VehicleRates    map[string]string  `json:"vehicle_rates,omitempty"`
	CostAggregation string             `json:"cost_aggregation,omitempty"`
	StateFeatures   []string           `json:"state_features,omitempty"`

	StartingSoCPercent float64 `json:"starting_soc_percent,omitempty"`
	FullSoCPercent     float64 `json:"full_soc_percent,omitempty"`

	VehicleParameters map[string]float64 `json:"vehicle_parameters,omitempty"`
	RoadClasses       []string           `json:"road_classes,omitempty"`
	SpeedLimit        float64            `json:"speed_limit,omitempty"`
	SpeedLimitUnit    string             `json:"speed_limit_unit,omitempty"`

	K int `json:"k,omitempty"` // k-shortest-paths count; 0 or 1 means single-path search
}
