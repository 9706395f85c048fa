package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wallet-tracker-api/internal/services"
	"wallet-tracker-api/pkg/utils"
)

type CoinController struct {
	coinService services.CoinService
}

func NewCoinController(coinService services.CoinService) *CoinController {
	return &CoinController{
		coinService: coinService,
	}
}

// ListCoins godoc
// @Summary List all known coins
// @Tags coins
// @Produce json
// @Success 200 {object} dto.CoinListResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /coins/ [get]
func (cc *CoinController) ListCoins(c *gin.Context) {
	coins, err := cc.coinService.ListCoins(c.Request.Context())
	if err != nil {
		utils.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, coins)
}

// GetCoin godoc
// @Summary Get one coin by provider id
// @Description Proxies the raw provider payload untouched
// @Tags coins
// @Produce json
// @Param id path string true "Coin ID"
// @Success 200 {object} object
// @Failure 400 {object} dto.ErrorResponse
// @Router /coins/{id} [get]
func (cc *CoinController) GetCoin(c *gin.Context) {
	payload, err := cc.coinService.GetCoin(c.Request.Context(), c.Param("id"))
	if err != nil {
		// Provider failures surface as 400 on this endpoint.
		utils.SendErrorResponse(c, http.StatusBadRequest, "Can't get currency with id provided")
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}
