// Package spring smooths a scalar toward a moving target with a damped harmonic oscillator.
package spring

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Params describes the oscillator. A DampingRatio of 1 is critically damped:
// the value reaches its target as fast as possible without overshooting.
type Params struct {
	FPS          int
	Frequency    float64
	DampingRatio float64
	// RestDelta is the distance (and speed) under which the value snaps to the target.
	RestDelta float64
}

// Value is a spring-damped float. The zero value is not usable; call New.
type Value struct {
	spring    harmonica.Spring
	restDelta float64
	pos       float64
	vel       float64
	target    float64
}

// New returns a Value at rest at start.
func New(p Params, start float64) Value {
	return Value{
		spring:    harmonica.NewSpring(harmonica.FPS(p.FPS), p.Frequency, p.DampingRatio),
		restDelta: p.RestDelta,
		pos:       start,
		target:    start,
	}
}

// Current returns the smoothed value.
func (v Value) Current() float64 { return v.pos }

// Target returns the value being approached.
func (v Value) Target() float64 { return v.target }

// SetTarget changes the equilibrium the value moves toward.
func (v *Value) SetTarget(t float64) { v.target = t }

// Jump places the value at x, at rest, and makes x the target.
func (v *Value) Jump(x float64) {
	v.pos, v.vel, v.target = x, 0, x
}

// Settled reports whether the value is resting on its target.
func (v Value) Settled() bool {
	return v.pos == v.target && v.vel == 0
}

// Step advances one frame and reports whether the value has settled.
func (v *Value) Step() bool {
	if v.Settled() {
		return true
	}
	v.pos, v.vel = v.spring.Update(v.pos, v.vel, v.target)
	if math.Abs(v.target-v.pos) < v.restDelta && math.Abs(v.vel) < v.restDelta {
		v.pos, v.vel = v.target, 0
		return true
	}
	return false
}
