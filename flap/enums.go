// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flap

//go:generate core generate

// FoldPolicies determine when a [Flap] folds.
type FoldPolicies int32 //enums:enum -trim-prefix Fold

const (
	// FoldNever never folds: the flap is always shown side by side
	// with the content.
	FoldNever FoldPolicies = iota

	// FoldAlways always folds: the flap is always shown over
	// the content.
	FoldAlways

	// FoldAuto folds when there is not enough space to show
	// the flap, separator and content side by side.
	FoldAuto
)

// TransitionTypes determine which children move during
// fold and reveal transitions.
type TransitionTypes int32 //enums:enum -trim-prefix Transition

const (
	// TransitionOver slides the flap over the content, which stays in place.
	TransitionOver TransitionTypes = iota

	// TransitionUnder slides the content off the flap,
	// which stays in place below it.
	TransitionUnder

	// TransitionSlide slides the flap and the content together.
	TransitionSlide
)

// Positions are where the flap is placed relative to the content.
type Positions int32 //enums:enum -trim-prefix Position

const (
	// PositionStart places the flap at the start of the layout:
	// the left in left-to-right horizontal layouts, the right in
	// right-to-left ones and the top in vertical ones.
	PositionStart Positions = iota

	// PositionEnd places the flap at the end of the layout.
	PositionEnd
)

// ShadowDirections are the sides of a shadow rectangle.
// The shadow is darkest on the side that lies on the seam
// between the flap and the content, and fades out away from it.
type ShadowDirections int32 //enums:enum -trim-prefix Shadow

const (
	ShadowLeft ShadowDirections = iota
	ShadowRight
	ShadowUp
	ShadowDown
)

// Children are the child slots of a [Flap].
type Children int32 //enums:enum -trim-prefix Child

const (
	// ChildContent is the main content.
	ChildContent Children = iota

	// ChildFlap is the collapsible panel.
	ChildFlap

	// ChildSeparator is shown between the flap and the content.
	ChildSeparator
)

// Properties are the observable properties of a [Flap],
// reported to [Flap.OnNotify] observers when they change.
type Properties int32 //enums:enum -trim-prefix Notify

const (
	NotifyFoldPolicy Properties = iota
	NotifyTransitionType
	NotifyFlapPosition
	NotifyOrientation
	NotifyTextDirection
	NotifyRevealFlap
	NotifyLocked
	NotifyModal
	NotifySwipeToOpen
	NotifySwipeToClose
	NotifyRevealDuration
	NotifyFoldDuration
	NotifyFolded
	NotifyRevealProgress
	NotifyContent
	NotifyFlap
	NotifySeparator
)

// PendingTransition is a transition deferred until the running
// reveal animation completes. It is consumed exactly once, when
// that animation ends.
type PendingTransition int32 //enums:enum -trim-prefix Pending

const (
	// PendingNone is no deferred transition.
	PendingNone PendingTransition = iota

	// PendingFold animates the fold towards the current folded
	// state once the flap is hidden.
	PendingFold
)
