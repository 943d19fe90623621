package cost

import "github.com/routeforge/corridor/state"

// Option customizes a Model built by New. As a rule, option constructors
// never panic at runtime; validation happens once, in New, per spec.md
// §4.4's build-time "model fails UserConfigurationError" contract.
type Option func(cfg *modelConfig)

type modelConfig struct {
	weights              map[string]float64
	vehicleRates         map[string]VehicleCostRate
	networkRates         map[string]NetworkCostRate
	aggregation          Aggregation
	ignoreUnknownWeights bool
}

func newModelConfig() *modelConfig {
	return &modelConfig{
		weights:      make(map[string]float64),
		vehicleRates: make(map[string]VehicleCostRate),
		networkRates: make(map[string]NetworkCostRate),
		aggregation:  Sum,
	}
}

// WithWeight registers a weight for a named state variable. At least one
// weight must match a variable known to the bound state.Model (New
// enforces this), unless WithIgnoreUnknownWeights is also supplied.
func WithWeight(name string, weight float64) Option {
	return func(cfg *modelConfig) { cfg.weights[name] = weight }
}

// WithVehicleRate registers the VehicleCostRate for a named variable.
// Variables with a weight but no registered rate default to Identity.
func WithVehicleRate(name string, rate VehicleCostRate) Option {
	return func(cfg *modelConfig) { cfg.vehicleRates[name] = rate }
}

// WithNetworkRate registers the NetworkCostRate for a named variable.
// Variables with a weight but no registered rate default to ZeroRate.
func WithNetworkRate(name string, rate NetworkCostRate) Option {
	return func(cfg *modelConfig) { cfg.networkRates[name] = rate }
}

// WithAggregation sets the Aggregation used to fold per-variable costs
// into one scalar. Default is Sum.
func WithAggregation(a Aggregation) Option {
	return func(cfg *modelConfig) { cfg.aggregation = a }
}

// WithIgnoreUnknownWeights disables the build-time requirement that at
// least one weight match a known state variable name.
func WithIgnoreUnknownWeights() Option {
	return func(cfg *modelConfig) { cfg.ignoreUnknownWeights = true }
}

// weightedVariable is one weight entry resolved against a state.Model at
// build time, so TraversalCost/AccessCost never re-resolve names by
// string lookup on the hot path.
type weightedVariable struct {
	name        string
	index       int
	weight      float64
	vehicleRate VehicleCostRate
	networkRate NetworkCostRate
}

// Model is a built, immutable cost model bound to one state.Model, per
// spec.md §4.4. Safe for concurrent read-only use across worker
// goroutines, matching the rest of the model layer's per-query
// construction / shared-read-only-after-build discipline.
type Model struct {
	variables   []weightedVariable
	aggregation Aggregation
}

// New builds a Model for sm's variable set from opts. Returns
// ErrNoMatchingWeight if no weight matches a known variable and
// WithIgnoreUnknownWeights was not supplied.
func New(sm *state.Model, opts ...Option) (*Model, error) {
	cfg := newModelConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	variables := make([]weightedVariable, 0, len(cfg.weights))
	for name, weight := range cfg.weights {
		idx, err := sm.Index(name)
		if err != nil {
			continue
		}
		rate, ok := cfg.vehicleRates[name]
		if !ok {
			rate = Identity()
		}
		netRate, ok := cfg.networkRates[name]
		if !ok {
			netRate = ZeroRate()
		}
		variables = append(variables, weightedVariable{
			name:        name,
			index:       idx,
			weight:      weight,
			vehicleRate: rate,
			networkRate: netRate,
		})
	}

	if len(variables) == 0 && !cfg.ignoreUnknownWeights {
		return nil, ErrNoMatchingWeight
	}

	return &Model{variables: variables, aggregation: cfg.aggregation}, nil
}

// TraversalCost computes the scalar Cost of moving from prev to next
// across one edge, per spec.md §4.4's traversal cost computation.
func (m *Model) TraversalCost(prev, next state.Vector, ctx EdgeContext) (Cost, error) {
	costs := make([]Cost, len(m.variables))
	for i, wv := range m.variables {
		delta := next[wv.index] - prev[wv.index]
		vehicleCost, err := wv.vehicleRate.Evaluate(delta, next[wv.index])
		if err != nil {
			return 0, err
		}
		networkCost, err := wv.networkRate.TraversalCost(ctx)
		if err != nil {
			return 0, err
		}
		costs[i] = Cost(wv.weight) * (vehicleCost + networkCost)
	}
	return m.aggregation.apply(costs), nil
}

// AccessCost computes the scalar Cost of an access-model (turn)
// application from prev to next, per spec.md §4.4's "identical in shape"
// access cost computation.
func (m *Model) AccessCost(prev, next state.Vector, ctx AccessContext) (Cost, error) {
	costs := make([]Cost, len(m.variables))
	for i, wv := range m.variables {
		delta := next[wv.index] - prev[wv.index]
		vehicleCost, err := wv.vehicleRate.Evaluate(delta, next[wv.index])
		if err != nil {
			return 0, err
		}
		networkCost, err := wv.networkRate.AccessCost(ctx)
		if err != nil {
			return 0, err
		}
		costs[i] = Cost(wv.weight) * (vehicleCost + networkCost)
	}
	return m.aggregation.apply(costs), nil
}
