package http

import (
	"net/http"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userSvc.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrUserNotFound)
		return
	}
	user, err := h.userSvc.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "name, email and password are required"})
		return
	}
	if req.Role != "" && !domain.ValidUserRole(domain.UserRole(req.Role)) {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "role must be admin or volunteer"})
		return
	}

	user, err := h.userSvc.CreateUser(r.Context(), req.Name, req.Email, req.Password, domain.UserRole(req.Role))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrUserNotFound)
		return
	}

	var req updateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.userSvc.UpdateUser(r.Context(), id, req.Name, req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrUserNotFound)
		return
	}
	if err := h.userSvc.DeleteUser(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "user deleted successfully"})
}

func (h *UserHandler) AddCertificate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrUserNotFound)
		return
	}

	var cert domain.Certificate
	if !decodeBody(w, r, &cert) {
		return
	}
	if cert.Name == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "certificate name is required"})
		return
	}

	if err := h.userSvc.AddCertificate(r.Context(), id, &cert); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, cert)
}
