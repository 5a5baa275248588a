package controllers

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-api/database"
	"github.com/yeremiapane/cafe-api/models"
	"github.com/yeremiapane/cafe-api/utils"
)

type CafeController struct {
	Store  database.CafeStore
	Verify utils.KeyVerifier
	// Pick returns an index in [0, n). Defaults to a uniform random pick.
	Pick func(n int) int
}

func NewCafeController(store database.CafeStore, verify utils.KeyVerifier) *CafeController {
	return &CafeController{
		Store:  store,
		Verify: verify,
		Pick:   rand.IntN,
	}
}

// Home renders the landing page.
func (cc *CafeController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// GetRandomCafe -> one cafe chosen uniformly from the whole table
func (cc *CafeController) GetRandomCafe(c *gin.Context) {
	cafe, err := cc.Store.Random(c.Request.Context(), cc.Pick)
	if err != nil {
		utils.RespondServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cafe": cafe.ToMapping()})
}

// GetAllCafes
func (cc *CafeController) GetAllCafes(c *gin.Context) {
	cafes, err := cc.Store.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cafes": models.ToMappings(cafes)})
}

// SearchCafes -> exact match on ?loc=. No match answers 200 with an error body.
func (cc *CafeController) SearchCafes(c *gin.Context) {
	loc, ok := c.GetQuery("loc")
	if !ok {
		utils.RespondNotFound(c, http.StatusOK, utils.MsgNoCafesInLocation)
		return
	}

	cafes, err := cc.Store.GetByLocation(c.Request.Context(), loc)
	if err != nil {
		utils.RespondServerError(c, err)
		return
	}
	if len(cafes) == 0 {
		utils.RespondNotFound(c, http.StatusOK, utils.MsgNoCafesInLocation)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cafes": models.ToMappings(cafes)})
}

// AddCafe reads the form body. A flag is true when its field is present and
// non-empty, whatever the text ("false" included).
func (cc *CafeController) AddCafe(c *gin.Context) {
	in := models.CafeInput{
		Name:         postForm(c, "name"),
		MapURL:       postForm(c, "map_url"),
		ImgURL:       postForm(c, "img_url"),
		Location:     postForm(c, "loc"),
		Seats:        postForm(c, "seats"),
		HasSockets:   c.PostForm("sockets") != "",
		HasToilet:    c.PostForm("toilet") != "",
		HasWifi:      c.PostForm("wifi") != "",
		CanTakeCalls: c.PostForm("calls") != "",
		CoffeePrice:  postForm(c, "coffee_price"),
	}

	cafe, err := cc.Store.Insert(c.Request.Context(), in)
	if err != nil {
		utils.RespondServerError(c, err)
		return
	}

	utils.InfoLogger.Printf("New cafe created (ID=%d) in %s", cafe.ID, cafe.Location)
	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": utils.MsgCafeAdded},
	})
}

// UpdatePrice -> sets coffee_price from ?new_price=. A missing new_price clears it.
func (cc *CafeController) UpdatePrice(c *gin.Context) {
	id, ok := cafeID(c)
	if !ok {
		return
	}

	var newPrice *string
	if v, present := c.GetQuery("new_price"); present {
		newPrice = &v
	}

	if err := cc.Store.UpdatePrice(c.Request.Context(), id, newPrice); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			utils.RespondNotFound(c, http.StatusNotFound, utils.MsgCafeNotFound)
			return
		}
		utils.RespondServerError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, utils.MsgPriceUpdated)
}

// ReportClosed deletes a cafe when ?api-key= verifies.
func (cc *CafeController) ReportClosed(c *gin.Context) {
	id, ok := cafeID(c)
	if !ok {
		return
	}

	if !cc.Verify(c.Query("api-key")) {
		utils.RespondNotFound(c, http.StatusForbidden, utils.MsgWrongAPIKey)
		return
	}

	if err := cc.Store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			utils.RespondNotFound(c, http.StatusNotFound, utils.MsgCafeNotFound)
			return
		}
		utils.RespondServerError(c, err)
		return
	}

	utils.InfoLogger.Printf("Cafe %d reported closed and deleted", id)
	utils.RespondSuccess(c, http.StatusOK, utils.MsgCafeDeleted)
}

// cafeID parses :cafe_id. Anything that is not a non-negative integer is a
// routing miss and answers 404.
func cafeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("cafe_id"), 10, 0)
	if err != nil {
		utils.RespondNotFound(c, http.StatusNotFound, utils.MsgCafeNotFound)
		return 0, false
	}
	return uint(id), true
}

func postForm(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}
