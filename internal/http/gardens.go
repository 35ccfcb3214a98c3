package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrlokans/gardens/internal/entities"
)

// GardenStore is the repository surface the gardens API needs.
type GardenStore interface {
	GetAll() ([]entities.Garden, error)
	GetByID(id uint) (*entities.Garden, error)
	Create(in entities.GardenInput) (*entities.Garden, error)
	Update(id uint, in entities.GardenInput) (*entities.Garden, error)
	Delete(id uint) (int64, error)
}

// DeleteResponse reports how many rows a delete removed.
type DeleteResponse struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

type GardensController struct {
	store GardenStore
}

func NewGardensController(store GardenStore) *GardensController {
	return &GardensController{store: store}
}

// List handles GET /api/v1/gardens
func (gc *GardensController) List(c *gin.Context) {
	gardens, err := gc.store.GetAll()
	if err != nil {
		respondInternalError(c, err, "list gardens")
		return
	}
	c.JSON(http.StatusOK, gardens)
}

// Get handles GET /api/v1/gardens/:id
func (gc *GardensController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	garden, err := gc.store.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "get garden")
		return
	}
	if garden == nil {
		respondNotFound(c, "garden")
		return
	}
	c.JSON(http.StatusOK, garden)
}

// Create handles POST /api/v1/gardens
func (gc *GardensController) Create(c *gin.Context) {
	var in entities.GardenInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	garden, err := gc.store.Create(in)
	if err != nil {
		respondInternalError(c, err, "create garden")
		return
	}
	respondCreated(c, garden)
}

// Update handles PUT /api/v1/gardens/:id. Every field is replaced; omitted
// fields reset to their empty value.
func (gc *GardensController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in entities.GardenInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	garden, err := gc.store.Update(id, in)
	if err != nil {
		respondInternalError(c, err, "update garden")
		return
	}
	if garden == nil {
		respondNotFound(c, "garden")
		return
	}
	c.JSON(http.StatusOK, garden)
}

// Delete handles DELETE /api/v1/gardens/:id
func (gc *GardensController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	changes, err := gc.store.Delete(id)
	if err != nil {
		respondInternalError(c, err, "delete garden")
		return
	}
	if changes == 0 {
		respondNotFound(c, "garden")
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Message: "garden deleted", Changes: changes})
}
