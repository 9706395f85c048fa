package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wallet-tracker-api/internal/dto"
	"wallet-tracker-api/internal/services"
	"wallet-tracker-api/pkg/utils"
)

type WalletController struct {
	walletService services.WalletService
	statsService  services.StatisticsService
}

func NewWalletController(walletService services.WalletService, statsService services.StatisticsService) *WalletController {
	return &WalletController{
		walletService: walletService,
		statsService:  statsService,
	}
}

// GetWallet godoc
// @Summary Get wallet by id
// @Description Return the wallet id and cached balance
// @Tags wallet
// @Produce json
// @Param wallet query int true "Wallet ID"
// @Success 200 {object} dto.APIResponse{data=dto.WalletResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /wallet [get]
func (wc *WalletController) GetWallet(c *gin.Context) {
	walletParam := c.Query("wallet")
	if walletParam == "" {
		utils.SendErrorResponse(c, http.StatusBadRequest, "No wallet provided")
		return
	}

	walletID, err := strconv.ParseInt(walletParam, 10, 32)
	if err != nil {
		utils.SendValidationError(c, err)
		return
	}

	wallet, err := wc.walletService.GetWallet(int32(walletID))
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusOK, "", dto.ToWalletResponse(wallet))
}

// RecordMovement godoc
// @Summary Record a wallet movement
// @Description Append a transaction and update the wallet's cached balance
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body dto.MovementRequest true "Movement data"
// @Success 200 {object} dto.APIResponse{data=dto.TransactionResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /wallet [post]
func (wc *WalletController) RecordMovement(c *gin.Context) {
	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	transaction, err := wc.walletService.RecordMovement(&req)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusOK, "Movement recorded", dto.ToTransactionResponse(transaction))
}

// Statistics godoc
// @Summary Wallet market-trend report
// @Description Compare historical average cost against current market price,
// @Description for one currency or aggregated across the whole wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Param currency_code query string false "Currency code filter"
// @Param request body dto.StatisticRequest true "User identifier"
// @Success 200 {object} dto.WalletStatisticResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /wallet/statistic [get]
func (wc *WalletController) Statistics(c *gin.Context) {
	var req dto.StatisticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	currencyCode := c.Query("currency_code")

	report, err := wc.statsService.WalletStatistics(c.Request.Context(), req.User, currencyCode)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
