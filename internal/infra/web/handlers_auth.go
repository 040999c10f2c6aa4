package web

import (
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type staffResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	staff, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.sessions.Mint(w, staff); err != nil {
		s.log.Error().Err(err).Msg("mint session token")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, staffResponse{
		ID:    staff.ID,
		Email: staff.Email,
		Name:  staff.Name,
		Role:  string(staff.Role),
	})
}

func (s *Server) logoutHandler(w http.ResponseWriter, _ *http.Request) {
	s.sessions.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) meHandler(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	staff, err := s.auth.Get(r.Context(), claims.Subject)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, staffResponse{
		ID:    staff.ID,
		Email: staff.Email,
		Name:  staff.Name,
		Role:  string(staff.Role),
	})
}

func (s *Server) staffListHandler(w http.ResponseWriter, r *http.Request) {
	users, err := s.auth.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]staffResponse, 0, len(users))
	for _, u := range users {
		out = append(out, staffResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role)})
	}
	writeJSON(w, http.StatusOK, out)
}

type staffCreateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin editor"`
	Password string `json:"password" validate:"required,min=8"`
}

func (s *Server) staffCreateHandler(w http.ResponseWriter, r *http.Request) {
	var req staffCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	claims := claimsFrom(r.Context())
	actor, err := s.auth.Get(r.Context(), claims.Subject)
	if err != nil {
		writeError(w, err)
		return
	}

	created, err := s.auth.CreateStaff(r.Context(), actor, req.Email, req.Name, req.Role, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, staffResponse{
		ID:    created.ID,
		Email: created.Email,
		Name:  created.Name,
		Role:  string(created.Role),
	})
}
