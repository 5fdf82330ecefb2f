package envserver

import (
	"fmt"

	"github.com/inference-sim/boarding-sim/sim"
)

// session holds the simulation of one connection.
type session struct {
	defaults sim.BoardingConfig
	sim      *sim.BoardingSimulation
}

func newSession(defaults sim.BoardingConfig) *session {
	return &session{defaults: defaults}
}

// handle applies req and builds its response. Failures are reported in the
// response, never as a Go error, so the connection survives bad requests.
func (s *session) handle(req Request) Response {
	resp, err := s.apply(req)
	if err != nil {
		return Response{Op: req.Op, Error: err.Error(), ErrorKind: errorKind(err)}
	}
	resp.Op = req.Op
	return resp
}

func (s *session) apply(req Request) (Response, error) {
	if req.Op == OpReset {
		return s.reset(req)
	}
	if s.sim == nil {
		return Response{}, errNoEpisode
	}
	switch req.Op {
	case OpMask:
		return Response{Mask: s.sim.ActionMask(), Terminated: s.sim.Terminated()}, nil
	case OpStep:
		res, err := s.sim.Step(req.Row)
		if err != nil {
			return Response{}, err
		}
		return Response{
			Observation: res.Observation,
			Mask:        s.sim.ActionMask(),
			Reward:      res.Reward,
			Terminated:  res.Terminated,
			Info:        &res.Info,
		}, nil
	case OpRender:
		mode := sim.RenderMode(req.Mode)
		if mode == "" {
			mode = sim.RenderHuman
		}
		out, err := s.sim.Render(mode)
		if err != nil {
			return Response{}, err
		}
		return Response{Render: out, Terminated: s.sim.Terminated()}, nil
	default:
		return Response{}, fmt.Errorf("unknown op %q; valid ops: [reset, mask, step, render]", req.Op)
	}
}

func (s *session) reset(req Request) (Response, error) {
	cfg := s.defaults
	if req.NumRows > 0 {
		cfg.NumRows = req.NumRows
	}
	if req.SeatsPerRow > 0 {
		cfg.SeatsPerRow = req.SeatsPerRow
	}
	if req.BaggageFraction != nil {
		cfg.BaggageFraction = *req.BaggageFraction
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
	}
	if s.sim == nil {
		created, err := sim.NewBoardingSimulation(cfg)
		if err != nil {
			return Response{}, err
		}
		s.sim = created
	} else if _, err := s.sim.Reset(cfg); err != nil {
		return Response{}, err
	}
	return Response{Observation: s.sim.Observation(), Mask: s.sim.ActionMask()}, nil
}
