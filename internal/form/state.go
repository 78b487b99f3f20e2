package form

import (
	"HousePrice/internal/domain/models"
)

// State is everything the form page shows. It is a plain value; callers
// that share it across goroutines must synchronize access.
type State struct {
	Input      models.FormInput         `json:"input"`
	Prediction *models.PredictionResult `json:"prediction,omitempty"`
	Source     models.Source            `json:"source,omitempty"`
	Error      string                   `json:"error,omitempty"`
	Success    bool                     `json:"success"`
	Loading    bool                     `json:"loading"`
}

// Edit stores a new value for field and clears the transient error and
// success flags. The last prediction stays visible until the next submit.
func (s *State) Edit(field models.Field, value string) error {
	if err := s.Input.Set(field, value); err != nil {
		return err
	}
	s.Error = ""
	s.Success = false
	return nil
}

// Fill replaces every field at once, as a whole-form post does.
func (s *State) Fill(in models.FormInput) {
	s.Input = in
	s.Error = ""
	s.Success = false
}

// Fail records a user-visible error and drops any shown prediction.
func (s *State) Fail(msg string) {
	s.Error = msg
	s.Success = false
	s.Prediction = nil
	s.Source = ""
	s.Loading = false
}

// Succeed records a prediction.
func (s *State) Succeed(res models.PredictionResult, source models.Source) {
	s.Prediction = &res
	s.Source = source
	s.Error = ""
	s.Success = true
	s.Loading = false
}

// Reset clears fields, prediction, error and success.
func (s *State) Reset() {
	*s = State{}
}

// Clone returns a deep copy safe to hand to another goroutine.
func (s State) Clone() State {
	out := s
	if s.Prediction != nil {
		p := *s.Prediction
		out.Prediction = &p
	}
	return out
}
