package main

import (
	"errors"
	"fmt"

	mandel "github.com/marben/mandel_julia"
	"github.com/marben/mandel_julia/gesture"
	"github.com/marben/mandel_julia/session"
)

var errUnknownInput = errors.New("unknown input")

// toEvent converts a browser input into a session event.
func toEvent(in mandel.Input) (session.Event, error) {
	id := session.ViewID(in.View)
	switch in.Kind {
	case mandel.InputUp, mandel.InputKey, mandel.InputMaxIters, mandel.InputOrbitLength:
	default:
		if !id.Valid() {
			return nil, fmt.Errorf("%s input for view %d: %w", in.Kind, in.View, errUnknownInput)
		}
	}

	switch in.Kind {
	case mandel.InputDown:
		return session.PointerDown{View: id, X: in.X, Y: in.Y, Button: gesture.Button(in.Button)}, nil
	case mandel.InputMove:
		return session.PointerMove{View: id, X: in.X, Y: in.Y}, nil
	case mandel.InputUp:
		return session.PointerUp{Button: gesture.Button(in.Button)}, nil
	case mandel.InputWheel:
		return session.Wheel{View: id, X: in.X, Y: in.Y, DeltaY: in.DeltaY}, nil
	case mandel.InputEnter:
		return session.PointerEnter{View: id}, nil
	case mandel.InputLeave:
		return session.PointerLeave{View: id}, nil
	case mandel.InputKey:
		return session.Key{Key: in.Key}, nil
	case mandel.InputMaxIters:
		return session.SetMaxIters{N: in.N}, nil
	case mandel.InputOrbitLength:
		return session.SetOrbitLength{N: in.N}, nil
	}
	return nil, fmt.Errorf("input kind %d: %w", in.Kind, errUnknownInput)
}

func newStatus(st session.Status) mandel.ViewerStatus {
	out := mandel.ViewerStatus{
		JuliaParam:  st.JuliaParam,
		OrbitSeed:   st.OrbitSeed,
		OrbitLength: st.OrbitLength,
		MaxIters:    st.MaxIters,
	}
	for _, v := range st.Views {
		out.Views = append(out.Views, mandel.ViewerViewStatus{
			Center:        v.Center,
			PixelsPerUnit: v.PixelsPerUnit,
			Phase:         v.Phase.String(),
			Hovered:       v.Hovered,
			Pointer:       v.Pointer,
			HasPointer:    v.HasPointer,
		})
	}
	return out
}
