package handler

import (
	"errors"
	"net/http"
	"studio-api/common"
	"studio-api/model"
	"studio-api/service"
)

type BankHandler struct {
	service *service.BankService
}

func NewBankHandler(service *service.BankService) *BankHandler {
	return &BankHandler{service: service}
}

// CreateBank godoc
// @Summary      Create a bank
// @Tags         banks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bank body model.CreateBankRequest true "Bank details"
// @Success      201  {object}  model.Bank
// @Failure      400  {object}  common.AppError
// @Failure      403  {object}  common.AppError "Employee level required"
// @Failure      409  {object}  common.AppError "Bank code already exists"
// @Router       /api/banks [post]
func (h *BankHandler) CreateBank(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateBankRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	bank, err := h.service.CreateBank(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrBankCodeTaken) {
			return common.NewAppError(http.StatusConflict, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not create bank", err)
	}

	common.WriteJSON(w, http.StatusCreated, bank)
	return nil
}

// ListBanks godoc
// @Summary      List banks
// @Tags         banks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Bank
// @Failure      401  {object}  common.AppError
// @Router       /api/banks [get]
func (h *BankHandler) ListBanks(w http.ResponseWriter, r *http.Request) *common.AppError {
	banks, err := h.service.ListBanks(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve banks", err)
	}

	common.WriteJSON(w, http.StatusOK, banks)
	return nil
}
