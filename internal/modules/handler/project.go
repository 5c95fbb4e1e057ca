package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/infra/blob"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/serializer"
	"github.com/halcyonlabs/studio-api/internal/modules/service"
	"github.com/halcyonlabs/studio-api/internal/pkg/types"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	svc   service.ProjectService
	store *blob.Store
}

func NewProjectHandler(s service.ProjectService, store *blob.Store) *ProjectHandler {
	return &ProjectHandler{svc: s, store: store}
}

type CreateProjectReq struct {
	Name        string  `json:"name" binding:"required"`
	ClientID    *string `json:"client_id"`
	StartDate   string  `json:"start_date"`
	Status      string  `json:"status"`
	URL         *string `json:"url"`
	Image       *string `json:"image"`
	Industry    *string `json:"industry"`
	IsActive    *bool   `json:"is_active"`
	IsPortfolio *bool   `json:"is_portfolio"`
	Notes       string  `json:"notes"`
}

// parseClientRef turns an optional client reference into a nullable uuid. An
// empty string is coerced to null so the foreign key stays satisfiable.
func parseClientRef(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List all projects owned by the acting user
//	@Tags			project
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Project}
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	projects, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: projects})
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Get one project by its ID
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	project, err := h.svc.Get(c.Request.Context(), userID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: project})
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a new project; the server assigns the id
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"CreateProject payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	clientID, err := parseClientRef(req.ClientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid client_id", err))
		return
	}

	var startDate types.Date
	if req.StartDate != "" {
		startDate, err = types.ParseDate(req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid start_date", err))
			return
		}
	}

	project := model.Project{
		UserID:      userID,
		Name:        req.Name,
		ClientID:    clientID,
		StartDate:   startDate,
		Status:      req.Status,
		URL:         req.URL,
		Image:       req.Image,
		Industry:    req.Industry,
		IsActive:    true,
		IsPortfolio: false,
		Notes:       req.Notes,
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
	if req.IsPortfolio != nil {
		project.IsPortfolio = *req.IsPortfolio
	}

	if err := h.svc.Create(c.Request.Context(), &project); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: project})
}

type UpdateProjectReq struct {
	Name        *string `json:"name"`
	ClientID    *string `json:"client_id"`
	StartDate   *string `json:"start_date"`
	Status      *string `json:"status"`
	URL         *string `json:"url"`
	Image       *string `json:"image"`
	Industry    *string `json:"industry"`
	IsActive    *bool   `json:"is_active"`
	IsPortfolio *bool   `json:"is_portfolio"`
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Partially update a project; fields absent from the payload are untouched
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.UpdateProjectReq	true	"UpdateProject payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("project name is empty", nil))
			return
		}
		fields["name"] = *req.Name
	}
	if req.ClientID != nil {
		clientID, err := parseClientRef(req.ClientID)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid client_id", err))
			return
		}
		fields["client_id"] = clientID
	}
	if req.StartDate != nil {
		startDate, err := types.ParseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid start_date", err))
			return
		}
		fields["start_date"] = startDate
	}
	if req.Status != nil {
		if !model.ValidProjectStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("unknown status "+*req.Status, nil))
			return
		}
		fields["status"] = *req.Status
	}
	if req.URL != nil {
		fields["url"] = *req.URL
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Industry != nil {
		fields["industry"] = *req.Industry
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.IsPortfolio != nil {
		fields["is_portfolio"] = *req.IsPortfolio
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("no fields to update", nil))
		return
	}

	project, err := h.svc.Update(c.Request.Context(), userID, projectID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: project})
}

type UpdateProjectNotesReq struct {
	Notes *string `json:"notes" binding:"required"`
}

// UpdateNotes godoc
//
//	@Summary		Update project notes
//	@Description	Save the project's rich-text notes; used by the autosave path and independent of other fields
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string							true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.UpdateProjectNotesReq	true	"UpdateNotes payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id}/notes [put]
func (h *ProjectHandler) UpdateNotes(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateProjectNotesReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	if err := h.svc.UpdateNotes(c.Request.Context(), userID, projectID, *req.Notes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}

type ProjectImageReq struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

type ProjectImageResp struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
}

// ImageUploadURL godoc
//
//	@Summary		Presign project image upload
//	@Description	Return a presigned PUT URL for a project image; the dashboard uploads directly and then saves public_url on the record
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.ProjectImageReq	true	"ImageUploadURL payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=handler.ProjectImageResp}
//	@Router			/projects/{project_id}/image [post]
func (h *ProjectHandler) ImageUploadURL(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := ProjectImageReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	if _, err := h.svc.Get(c.Request.Context(), userID, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	ext := strings.ToLower(filepath.Ext(req.FileName))
	key := fmt.Sprintf("projects/%s/%s%s", projectID, uuid.New(), ext)

	uploadURL, err := h.store.PresignUpload(c.Request.Context(), key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "failed to presign upload", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: ProjectImageResp{
		UploadURL: uploadURL,
		PublicURL: h.store.PublicURL(key),
	}})
}
