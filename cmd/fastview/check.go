package main

import (
	"errors"
	"log/slog"

	"github.com/born-ml/fastview/tensor"
)

// scenario is one assignment whose destination sum is known.
type scenario struct {
	name string
	run  func() (float64, error)
	want float64
}

// rejection is an assignment that must fail with ErrIncompatibleShape.
type rejection struct {
	name string
	run  func() error
}

func scenarios() []scenario {
	a2 := func() *tensor.Tensor[float64] { return tensor.Iota[float64](tensor.Shape{4, 3}) }
	a3 := func() *tensor.Tensor[float64] { return tensor.Iota[float64](tensor.Shape{4, 4, 3}) }
	into := func(dst tensor.Target[float64], src tensor.Source[float64], sum tensor.Source[float64]) (float64, error) {
		if err := tensor.Assign(dst, src); err != nil {
			return 0, err
		}
		return tensor.Sum(sum), nil
	}

	all, seq := tensor.All, tensor.Seq
	fall, fseq := tensor.Fall, tensor.FSeq

	return []scenario{
		{"row (3) into (1,1,3,1)", func() (float64, error) {
			a := a2()
			b, err := tensor.FromSource[float64](tensor.Shape{1, 1, 3, 1}, a.MustView(tensor.Index(1), all))
			if err != nil {
				return 0, err
			}
			return b.Sum(), nil
		}, 12},
		{"column (4) into b(all,0,1)", func() (float64, error) {
			a, b := a2(), tensor.Zeros[float64](tensor.Shape{4, 4, 3})
			return into(b.MustView(all, tensor.Index(0), tensor.Index(1)), a.MustView(all, tensor.Index(1)), b)
		}, 22},
		{"column (4) into b(0,all,1)", func() (float64, error) {
			a, b := a2(), tensor.Zeros[float64](tensor.Shape{4, 4, 3})
			return into(b.MustView(tensor.Index(0), all, tensor.Index(1)), a.MustView(all, tensor.Index(1)), b)
		}, 22},
		{"row (3) into b(0,0,all)", func() (float64, error) {
			a, b := a2(), tensor.Zeros[float64](tensor.Shape{4, 4, 3})
			return into(b.MustView(tensor.Index(0), tensor.Index(0), all), a.MustView(tensor.Index(0), all), b)
		}, 3},
		{"plane (4,2) of 3D into 2D", func() (float64, error) {
			a, b := a3(), tensor.Zeros[float64](tensor.Shape{4, 3})
			return into(b.MustView(all, seq(0, 2)), a.MustView(tensor.Index(2), all, seq(0, 2)), b)
		}, 232},
		{"plane (4,2) across axes into 2D", func() (float64, error) {
			a, b := a3(), tensor.Zeros[float64](tensor.Shape{4, 3})
			return into(b.MustView(all, seq(0, 2)), a.MustView(all, seq(0, 2), tensor.Index(1)), b)
		}, 164},
		{"fiber (3) into row", func() (float64, error) {
			a, b := a3(), tensor.Zeros[float64](tensor.Shape{4, 3})
			return into(b.MustView(tensor.Index(0), all), a.MustView(tensor.Index(1), tensor.Index(1), all), b)
		}, 48},
		{"fixed (4,1) into b(fall,0,1)", func() (float64, error) {
			a, b := a2(), tensor.Zeros[float64](tensor.Shape{4, 4, 3})
			return into(b.MustView(fall, tensor.Index(0), tensor.Index(1)), a.MustView(fall, fseq(1, 2)), b)
		}, 22},
		{"fixed (1,3) into b(0,0,fall)", func() (float64, error) {
			a, b := a2(), tensor.Zeros[float64](tensor.Shape{4, 4, 3})
			return into(b.MustView(tensor.Index(0), tensor.Index(0), fall), a.MustView(fseq(0, 1), fall), b)
		}, 3},
		{"lazy 1*column into (1,1,4,1,1)", func() (float64, error) {
			a := a2()
			e := tensor.Mul[float64](tensor.Scalar(1.0), a.MustView(all, tensor.Index(1)))
			b, err := tensor.FromSource[float64](tensor.Shape{1, 1, 4, 1, 1}, e)
			if err != nil {
				return 0, err
			}
			return b.Sum(), nil
		}, 22},
	}
}

func rejections() []rejection {
	a := tensor.Iota[float64](tensor.Shape{2, 3})
	declare := func(shape tensor.Shape, src tensor.Source[float64]) func() error {
		return func() error {
			_, err := tensor.FromSource(shape, src)
			return err
		}
	}
	return []rejection{
		{"row (1,3) as (3,1)", declare(tensor.Shape{3, 1}, a.MustView(tensor.Index(1), tensor.All))},
		{"column (2,1) as (1,2)", declare(tensor.Shape{1, 2}, a.MustView(tensor.All, tensor.Index(1)))},
		{"column (2) as (1,1,3)", declare(tensor.Shape{1, 1, 3}, a.MustView(tensor.All, tensor.Index(1)))},
	}
}

// runChecks runs every scenario and rejection and returns how many failed.
func runChecks(log *slog.Logger) int {
	failed := 0
	for _, s := range scenarios() {
		got, err := s.run()
		switch {
		case err != nil:
			failed++
			log.Error("scenario failed", "name", s.name, "err", err)
		case got != s.want:
			failed++
			log.Error("scenario mismatch", "name", s.name, "got", got, "want", s.want)
		default:
			log.Debug("scenario ok", "name", s.name, "sum", got)
		}
	}

	for _, r := range rejections() {
		err := r.run()
		if !errors.Is(err, tensor.ErrIncompatibleShape) {
			failed++
			log.Error("rejection not reported", "name", r.name, "err", err)
			continue
		}
		log.Debug("rejected", "name", r.name, "err", err)
	}

	total := len(scenarios()) + len(rejections())
	if failed > 0 {
		log.Error("check failed", "failed", failed, "total", total)
	} else {
		log.Info("check passed", "total", total)
	}
	return failed
}
