package main

import (
	"fmt"
	"strconv"

	"github.com/routeforge/corridor/access"
	"github.com/routeforge/corridor/batch"
	"github.com/routeforge/corridor/config"
	"github.com/routeforge/corridor/corridorio"
	"github.com/routeforge/corridor/cost"
	"github.com/routeforge/corridor/frontier"
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/roadnetio"
	"github.com/routeforge/corridor/search"
	"github.com/routeforge/corridor/state"
	"github.com/routeforge/corridor/traversal"
	"github.com/routeforge/corridor/unit"
)

// auxiliaryTables holds the optional per-edge tables a query's model stack
// may draw on, loaded once at process start alongside the graph so every
// worker shares the same read-only copy.
type auxiliaryTables struct {
	speed     map[roadnet.EdgeId]float64
	roadClass map[roadnet.EdgeId]uint8
}

// loadAuxiliaryTables loads whichever of GraphConfig's optional table
// paths are set; an empty path means that table is unavailable, not an
// error — a model that needs it fails at InstanceFactory time instead.
func loadAuxiliaryTables(gc config.GraphConfig) (auxiliaryTables, error) {
	var aux auxiliaryTables
	if gc.SpeedTablePath != "" {
		t, err := roadnetio.LoadFloatTable(gc.SpeedTablePath)
		if err != nil {
			return aux, fmt.Errorf("loading speed table: %w", err)
		}
		aux.speed = t
	}
	if gc.RoadClassTablePath != "" {
		t, err := roadnetio.LoadRoadClassTable(gc.RoadClassTablePath)
		if err != nil {
			return aux, fmt.Errorf("loading road class table: %w", err)
		}
		aux.roadClass = t
	}
	return aux, nil
}

// noopAccess applies no turn penalty; it is the default access.Model for
// every CLI-built Instance, since none of config.GraphConfig's auxiliary
// tables covers turn headings by default.
type noopAccess struct{}

func (noopAccess) InputFeatures() []state.InputFeature   { return nil }
func (noopAccess) OutputFeatures() []state.OutputFeature { return nil }
func (noopAccess) TraverseAccess(access.Trajectory, state.Vector, *state.Model) error { return nil }

// acceptAllFrontier admits every edge; used when a query sets no
// road_classes filter.
type acceptAllFrontier struct{}

func (acceptAllFrontier) ValidFrontier(roadnet.EdgeId, state.Vector, *state.Model) (bool, error) {
	return true, nil
}

// buildInstanceFactory returns a batch.InstanceFactory that selects the
// distance or time traversal model per query (falling back to
// cfg.Model.DefaultModelName), with cost weights from the query if given,
// else cfg.Model.Weights, matching spec.md §6's "per-model parameter
// sections... extra fields are allowed and ignored" query contract.
func buildInstanceFactory(graph *roadnet.Graph, aux auxiliaryTables, cfg *config.Config) batch.InstanceFactory {
	return func(q corridorio.Query) (*search.Instance, error) {
		modelName := q.ModelName
		if modelName == "" {
			modelName = cfg.Model.DefaultModelName
		}

		sb := state.NewBuilder()
		declareCore(sb)

		var tm traversal.Model
		var defaultWeightVar string

		switch modelName {
		case "distance":
			sm := sb.Build()
			var err error
			tm, err = traversal.NewDistanceService(graph).BuildModel(traversal.BuildParams{}, sm)
			if err != nil {
				return nil, fmt.Errorf("building distance model: %w", err)
			}
			defaultWeightVar = "trip_distance"
			return assembleInstance(graph, sm, tm, aux, q, cfg, defaultWeightVar)

		case "time":
			if aux.speed == nil {
				return nil, fmt.Errorf("model %q requires graph.speed_table_path to be configured", modelName)
			}
			declareTime(sb)
			sm := sb.Build()

			distTm, err := traversal.NewDistanceService(graph).BuildModel(traversal.BuildParams{}, sm)
			if err != nil {
				return nil, fmt.Errorf("building distance sub-model: %w", err)
			}
			speedCap, err := speedCapFrom(q)
			if err != nil {
				return nil, err
			}
			speedTm, err := traversal.NewSpeedService(aux.speed).BuildModel(traversal.BuildParams{SpeedCapMetersPerSecond: speedCap}, sm)
			if err != nil {
				return nil, fmt.Errorf("building speed sub-model: %w", err)
			}
			timeTm, err := traversal.NewTimeService(graph).BuildModel(traversal.BuildParams{SpeedCapMetersPerSecond: speedCap}, sm)
			if err != nil {
				return nil, fmt.Errorf("building time sub-model: %w", err)
			}
			tm = traversal.NewCombined(false, distTm, speedTm, timeTm)
			defaultWeightVar = "trip_time"
			return assembleInstance(graph, sm, tm, aux, q, cfg, defaultWeightVar)

		default:
			return nil, fmt.Errorf("unknown model_name %q", modelName)
		}
	}
}

// declareCore declares the state variables every model stack needs.
func declareCore(sb *state.Builder) {
	_ = sb.Declare("edge_distance", state.VariableConfig{Kind: state.Distance})
	_ = sb.Declare("trip_distance", state.VariableConfig{Kind: state.Distance, Accumulate: true})
}

// declareTime additionally declares the speed/time variables the time
// model stack needs.
func declareTime(sb *state.Builder) {
	_ = sb.Declare("edge_speed", state.VariableConfig{Kind: state.Speed})
	_ = sb.Declare("edge_time", state.VariableConfig{Kind: state.Time})
	_ = sb.Declare("trip_time", state.VariableConfig{Kind: state.Time, Accumulate: true})
}

// speedCapFrom resolves the query's optional speed_limit/speed_limit_unit
// pair into meters per second, or 0 (meaning "use the service's own
// default") if the query sets no cap.
func speedCapFrom(q corridorio.Query) (float64, error) {
	if q.SpeedLimit <= 0 {
		return 0, nil
	}
	u := unit.SpeedUnit(q.SpeedLimitUnit)
	if u == "" {
		u = unit.MetersPerSecond
	}
	return unit.ToBaseSpeed(q.SpeedLimit, u)
}

// assembleInstance builds the cost and frontier models and returns the
// completed search.Instance, given the already-built traversal model.
func assembleInstance(graph *roadnet.Graph, sm *state.Model, tm traversal.Model, aux auxiliaryTables, q corridorio.Query, cfg *config.Config, defaultWeightVar string) (*search.Instance, error) {
	cm, err := buildCostModel(sm, q, cfg, defaultWeightVar)
	if err != nil {
		return nil, fmt.Errorf("building cost model: %w", err)
	}

	fm, err := buildFrontierModel(aux, q)
	if err != nil {
		return nil, fmt.Errorf("building frontier model: %w", err)
	}

	return &search.Instance{
		Graph:      graph,
		StateModel: sm,
		Traversal:  tm,
		Access:     noopAccess{},
		Cost:       cm,
		Frontier:   fm,
	}, nil
}

// buildCostModel resolves weights from the query if it set any, else
// cfg.Model.Weights, else a single weight of 1.0 on defaultWeightVar, and
// the aggregation from cfg.Model.Aggregation ("sum" | "mul").
func buildCostModel(sm *state.Model, q corridorio.Query, cfg *config.Config, defaultWeightVar string) (*cost.Model, error) {
	weights := q.Weights
	if len(weights) == 0 {
		weights = cfg.Model.Weights
	}
	if len(weights) == 0 {
		weights = map[string]float64{defaultWeightVar: 1.0}
	}

	opts := make([]cost.Option, 0, len(weights)+1)
	for name, w := range weights {
		opts = append(opts, cost.WithWeight(name, w))
	}
	if cfg.Model.Aggregation == "mul" {
		opts = append(opts, cost.WithAggregation(cost.Mul))
	}
	return cost.New(sm, opts...)
}

// buildFrontierModel builds a RoadClassFilter when both a road-class
// table is loaded and the query restricts road_classes, else admits
// every edge. Per-query road_classes are parsed as the numeric class ids
// the table stores, since the category-name-to-id table is a deployment
// concern this CLI does not itself load.
func buildFrontierModel(aux auxiliaryTables, q corridorio.Query) (frontier.Model, error) {
	if aux.roadClass == nil || len(q.RoadClasses) == 0 {
		return acceptAllFrontier{}, nil
	}
	allowed := make(map[uint8]bool, len(q.RoadClasses))
	for _, s := range q.RoadClasses {
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("road_classes entry %q is not a numeric class id: %w", s, err)
		}
		allowed[uint8(n)] = true
	}
	return frontier.NewRoadClassFilter(aux.roadClass, allowed), nil
}
