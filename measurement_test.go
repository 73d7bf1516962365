package quantum

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCollapse(t *testing.T) {
	Convey("Given an engine holding a registered superposition", t, func() {
		e := NewEngine(nil)

		Convey("When collapsing with argmax", func() {
			handle, _, err := e.BuildSuperposition(weightedOptions(), BuildContext{})
			So(err, ShouldBeNil)

			result, err := e.Collapse(handle, MeasurementContext{Mode: ModeArgmax})

			So(err, ShouldBeNil)
			So(result.Option.ID, ShouldEqual, "alpha")
			So(result.Probability, ShouldAlmostEqual, 0.6, 1e-9)
		})

		Convey("When argmax faces tied probabilities", func() {
			handle, _, err := e.BuildSuperposition([]Option{
				{ID: "first", Weight: 0.5},
				{ID: "second", Weight: 0.5},
			}, BuildContext{})
			So(err, ShouldBeNil)

			result, err := e.Collapse(handle, MeasurementContext{Mode: ModeArgmax})

			So(err, ShouldBeNil)

			Convey("The earliest index should win", func() {
				So(result.Option.ID, ShouldEqual, "first")
			})
		})

		Convey("When collapsing with the default weighted-random mode", func() {
			seed := uint64(7)
			handle, _, err := e.BuildSuperposition(weightedOptions(), BuildContext{})
			So(err, ShouldBeNil)

			result, err := e.Collapse(handle, MeasurementContext{
				Seed:          &seed,
				PreserveState: true,
			})

			So(err, ShouldBeNil)
			So(result.Mode, ShouldEqual, ModeWeightedRandom)
			So(result.Option.ID, ShouldBeIn, "alpha", "beta", "gamma")
			So(result.Probability, ShouldBeGreaterThan, 0)
			So(result.Probability, ShouldBeLessThanOrEqualTo, 1)

			Convey("The same seed should reproduce the same choice", func() {
				again, err := e.Collapse(handle, MeasurementContext{
					Seed:          &seed,
					PreserveState: true,
				})

				So(err, ShouldBeNil)
				So(again.Option.ID, ShouldEqual, result.Option.ID)
			})
		})

		Convey("When a preferred option nudges the measurement", func() {
			handle, _, err := e.BuildSuperposition(weightedOptions(), BuildContext{})
			So(err, ShouldBeNil)

			result, err := e.Collapse(handle, MeasurementContext{
				Mode:            ModeArgmax,
				PreferredOption: "gamma",
				PreferredWeight: 100,
				PreserveState:   true,
			})

			So(err, ShouldBeNil)
			So(result.Option.ID, ShouldEqual, "gamma")

			Convey("The stored state should keep its original probabilities", func() {
				sp, err := e.State(handle)
				So(err, ShouldBeNil)
				So(sp.Probabilities[2], ShouldAlmostEqual, 0.1, 1e-9)
			})
		})

		Convey("When the preferred weight is negative", func() {
			handle, _, err := e.BuildSuperposition(weightedOptions(), BuildContext{})
			So(err, ShouldBeNil)

			_, err = e.Collapse(handle, MeasurementContext{
				PreferredOption: "alpha",
				PreferredWeight: -2,
			})

			So(errors.Is(err, ErrInvalidWeight), ShouldBeTrue)
		})

		Convey("When decoherence is applied to a preserved state", func() {
			handle, sp, err := e.BuildSuperposition(weightedOptions(), BuildContext{})
			So(err, ShouldBeNil)

			result, err := e.Collapse(handle, MeasurementContext{
				Mode:          ModeArgmax,
				Decoherence:   0.5,
				PreserveState: true,
			})

			So(err, ShouldBeNil)

			Convey("Coherence should strictly decrease and stay within [0,1]", func() {
				So(result.Coherence, ShouldBeLessThan, sp.Coherence)
				So(result.Coherence, ShouldAlmostEqual, 0.75, 1e-9)
				So(result.Coherence, ShouldBeGreaterThanOrEqualTo, 0)

				state, err := e.State(handle)
				So(err, ShouldBeNil)
				So(state.Coherence, ShouldAlmostEqual, 0.75, 1e-9)
			})
		})

		Convey("When a collapse does not preserve the state", func() {
			handle, _, err := e.BuildSuperposition(weightedOptions(), BuildContext{})
			So(err, ShouldBeNil)

			result, err := e.Collapse(handle, MeasurementContext{Mode: ModeArgmax})

			So(err, ShouldBeNil)
			So(result.Preserved, ShouldBeFalse)
			So(result.State, ShouldBeNil)

			Convey("A second collapse on the handle should fail", func() {
				_, err := e.Collapse(handle, MeasurementContext{Mode: ModeArgmax})
				So(errors.Is(err, ErrUnknownHandle), ShouldBeTrue)
			})
		})

		Convey("When a collapse preserves the state", func() {
			handle, _, err := e.BuildSuperposition(weightedOptions(), BuildContext{})
			So(err, ShouldBeNil)

			result, err := e.Collapse(handle, MeasurementContext{
				Mode:          ModeArgmax,
				PreserveState: true,
			})

			So(err, ShouldBeNil)
			So(result.Preserved, ShouldBeTrue)
			So(result.State, ShouldNotBeNil)

			Convey("The handle should remain collapsible", func() {
				again, err := e.Collapse(handle, MeasurementContext{Mode: ModeArgmax})
				So(err, ShouldBeNil)
				So(again.Option.ID, ShouldEqual, "alpha")
			})
		})

		Convey("When collapsing an unregistered handle", func() {
			_, err := e.Collapse("sp_404", MeasurementContext{})
			So(errors.Is(err, ErrUnknownHandle), ShouldBeTrue)
		})
	})
}
