// Package wizard implements the five-step profile form: collect, validate,
// merge, submit. It owns a transient working copy of the profile; nothing is
// durable until Submit hands the aggregate to the session store.
package wizard

import (
	"context"
	"errors"

	"go-internmatch-portal/internal/models"
	"go-internmatch-portal/internal/session"
)

// Step numbers. Linear, no branching, no skipping.
const (
	StepPersonal = iota + 1
	StepProfessional
	StepEducation
	StepSkills
	StepPreferences
)

const firstStep, lastStep = StepPersonal, StepPreferences

// ErrValidation signals that Submit was blocked by the final step's
// validation; the field messages are in Errors().
var ErrValidation = errors.New("validation failed")

var errNotFinalStep = errors.New("submit is only available on the final step")

type Wizard struct {
	store *session.Store

	step       int
	editing    bool
	seeded     bool
	submitting bool
	form       models.Profile
	errors     map[string]string
}

// New creates a wizard on step 1 with the default empty form, then seeds it
// from the signed-in session if there is one.
func New(store *session.Store) *Wizard {
	w := &Wizard{
		store:  store,
		step:   firstStep,
		form:   models.NewProfile(),
		errors: map[string]string{},
	}
	w.SeedFromSession()
	return w
}

// SeedFromSession populates the working copy from the authenticated session,
// exactly once. Later calls are no-ops so a session refresh can never clobber
// in-progress edits. The UI calls this whenever the session changes.
func (w *Wizard) SeedFromSession() {
	if w.seeded {
		return
	}
	u := w.store.User()
	if u == nil || u.UserID == "" {
		return
	}

	form := u.Profile.Clone()
	form.Normalize()
	w.form = form
	w.editing = true
	w.seeded = true
}

func (w *Wizard) Step() int { return w.step }

// Editing reports whether the wizard pre-populated from an existing profile.
func (w *Wizard) Editing() bool { return w.editing }

func (w *Wizard) Submitting() bool { return w.submitting }

// Form returns the current working copy.
func (w *Wizard) Form() models.Profile { return w.form }

// Errors returns the per-field messages from the last failed validation.
func (w *Wizard) Errors() map[string]string { return w.errors }

// Next validates the current step only. On failure it stays put and records
// the field errors; on success it advances, capped at the final step.
func (w *Wizard) Next() bool {
	if errs := validateStep(w.step, w.form); len(errs) > 0 {
		w.errors = errs
		return false
	}
	w.errors = map[string]string{}
	if w.step < lastStep {
		w.step++
	}
	return true
}

// Previous moves back one step without re-validating the step being left.
func (w *Wizard) Previous() {
	if w.step > firstStep {
		w.step--
	}
}

// Submit re-validates the final step (earlier steps are trusted once passed)
// and hands the full aggregate to the session store. On remote failure the
// wizard stays on the final step and the error propagates to the caller.
func (w *Wizard) Submit(ctx context.Context) error {
	if w.step != lastStep {
		return errNotFinalStep
	}
	if errs := validateStep(w.step, w.form); len(errs) > 0 {
		w.errors = errs
		return ErrValidation
	}
	w.errors = map[string]string{}

	w.submitting = true
	defer func() { w.submitting = false }()

	if _, err := w.store.UpdateProfile(ctx, w.form); err != nil {
		return err
	}
	return nil
}
