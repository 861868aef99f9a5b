// This file is part of Gotic.
//
// Gotic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gotic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gotic.  If not, see <https://www.gnu.org/licenses/>.

package gui

// FeatureReq is used to request the setting of a gui attribute
// eg. toggling full screen.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData any

// List of valid feature requests. argument must be of the type specified or
// else the request will fail with the InvalidFeatureArgs error.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// whether the gui is visible or not.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// put gui output into full-screen mode (ie. no window border and content
	// the size of the monitor).
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// toggle the full screen state.
	ReqToggleFullScreen FeatureReq = "ReqToggleFullScreen" // nil

	// the title of the window.
	ReqSetTitle FeatureReq = "ReqSetTitle" // string

	// the scale of the window in windowed mode.
	ReqSetScale FeatureReq = "ReqSetScale" // float32

	// show the frame rate. the function argument is polled by the GUI. a nil
	// function hides the frame rate.
	ReqShowFPS FeatureReq = "ReqShowFPS" // func() float64
)

// Args checks that the arguments of a request are of the expected types and
// returns the first argument. It is a helper function for implementations of
// SetFeature().
func Args[T any](args []FeatureReqData) (T, bool) {
	var zero T
	if len(args) != 1 {
		return zero, false
	}
	if args[0] == nil {
		return zero, true
	}
	v, ok := args[0].(T)
	return v, ok
}
