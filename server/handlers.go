package server

import (
	"encoding/json"
	"net/http"
)

// decodeAndValidate decodes the JSON body into dst and runs tag validation.
// On failure it writes the 400 envelope and reports false.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "Malformed request body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "Validation failed")
		return false
	}
	return true
}

// LoginHandler authenticates a user and returns a token pair.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserLoginRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		resp, err := s.auth.AuthenticateUser(r.Context(), req.Username, req.Password)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// ClientAuthHandler authenticates a client and returns a token pair.
func (s *Server) ClientAuthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClientAuthRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		resp, err := s.auth.AuthenticateClient(r.Context(), req.ClientID, req.ClientSecret)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// UserRefreshHandler exchanges a user refresh token for a new access token.
func (s *Server) UserRefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshTokenRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		resp, err := s.auth.RefreshUserToken(r.Context(), req.RefreshToken)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// ClientRefreshHandler exchanges a client refresh token for a new access token.
func (s *Server) ClientRefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshTokenRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		resp, err := s.auth.RefreshClientToken(r.Context(), req.RefreshToken)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
