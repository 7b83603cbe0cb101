// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/xvmee/portfolio/internal/eventprocessor"
	"github.com/xvmee/portfolio/internal/logging"
	"github.com/xvmee/portfolio/internal/metrics"
	"github.com/xvmee/portfolio/internal/models"
	"github.com/xvmee/portfolio/internal/store"
	"github.com/xvmee/portfolio/internal/upload"
	"github.com/xvmee/portfolio/internal/validation"
)

// multipartFieldAllowance is room for the text fields and multipart framing
// on top of the image size limit.
const multipartFieldAllowance = 1 << 20

// TotalCountHeader carries the unpaged item count on paged list responses.
const TotalCountHeader = "X-Total-Count"

// ListPortfolio handles gallery listing requests
//
// @Summary List portfolio items
// @Description Returns the gallery in creation order. With page or limit set only that page is returned and X-Total-Count holds the full count.
// @Tags Portfolio
// @Produce json
// @Param page query int false "1-based page number"
// @Param limit query int false "Items per page (default 6, max 50)"
// @Success 200 {array} models.PortfolioItem "Portfolio items"
// @Header 200 {integer} X-Total-Count "Total items, set when paging"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} ErrorResponse "Failed to fetch portfolio items"
// @Router /portfolio [get]
func (h *Handler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	resp := NewResponseWriter(w, r)

	defaultLimit, maxLimit := 6, 50
	if h.config != nil {
		defaultLimit, maxLimit = h.config.API.DefaultPageSize, h.config.API.MaxPageSize
	}
	paging, paged, ok := parsePagination(r, defaultLimit, maxLimit)
	if !ok {
		resp.BadRequest(msgInvalidPaging)
		return
	}
	if paged {
		if verr := validation.ValidateStruct(&paging); verr != nil {
			resp.BadRequest(msgInvalidPaging)
			return
		}
	}

	items, err := h.store.ListPortfolioItems(r.Context())
	if err != nil {
		resp.InternalError(msgFetchFailed, err)
		return
	}
	if items == nil {
		items = []models.PortfolioItem{}
	}

	if paged {
		page := store.Paginate(items, paging.Page, paging.Limit)
		w.Header().Set(TotalCountHeader, strconv.Itoa(page.Total))
		items = page.Items
	}

	resp.OK(items)
}

// GetPortfolioItem handles single item requests
//
// @Summary Get a portfolio item
// @Tags Portfolio
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.PortfolioItem "Portfolio item"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /portfolio/{id} [get]
func (h *Handler) GetPortfolioItem(w http.ResponseWriter, r *http.Request) {
	resp := NewResponseWriter(w, r)

	id, ok := parseItemID(r)
	if !ok {
		resp.BadRequest(msgInvalidID)
		return
	}

	item, err := h.store.GetPortfolioItem(r.Context(), id)
	if errors.Is(err, store.ErrItemNotFound) {
		resp.NotFound(msgItemNotFound)
		return
	}
	if err != nil {
		resp.InternalError(msgFetchItemFailed, err)
		return
	}
	resp.OK(item)
}

// CreatePortfolioItem handles gallery uploads
//
// @Summary Create a portfolio item
// @Description Uploads an image with a title and description. In production a demo image is used instead of the upload.
// @Tags Portfolio
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title, at most 100 characters"
// @Param description formData string true "Description, at most 255 characters"
// @Param image formData file true "Image file"
// @Success 201 {object} models.PortfolioItem "Created item"
// @Failure 400 {object} ErrorResponse "Invalid upload or fields"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create portfolio item"
// @Router /portfolio [post]
func (h *Handler) CreatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	resp := NewResponseWriter(w, r)

	var maxUpload int64 = 5 << 20
	if h.config != nil {
		maxUpload = h.config.Storage.MaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload+multipartFieldAllowance)

	fh, err := h.readImagePart(r, maxUpload)
	if err != nil {
		metrics.RecordUpload("rejected")
		resp.BadRequest(uploadErrorMessage(err))
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	imageURL, cleanup, err := h.saver.Save(fh)
	if err != nil {
		if isUploadRejection(err) {
			metrics.RecordUpload("rejected")
			resp.BadRequest(uploadErrorMessage(err))
			return
		}
		metrics.RecordUpload("error")
		resp.InternalError(msgCreateFailed, err)
		return
	}

	req := CreatePortfolioItemRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		cleanup()
		metrics.RecordUpload("rejected")
		resp.BadRequest(verr.Error())
		return
	}

	item, err := h.store.CreatePortfolioItem(r.Context(), models.NewPortfolioItem{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    imageURL,
	})
	if err != nil {
		cleanup()
		metrics.RecordUpload("error")
		resp.InternalError(msgCreateFailed, err)
		return
	}

	metrics.RecordUpload("success")
	logging.Ctx(r.Context()).Info().Int("item_id", item.ID).Str("image_url", item.ImageURL).Msg("portfolio item created")
	h.publish(r.Context(), eventprocessor.NewPortfolioCreatedEvent(item))
	resp.Created(item)
}

// readImagePart parses the multipart body and returns the image part, which
// is nil when the form has none.
func (h *Handler) readImagePart(r *http.Request, maxUpload int64) (*multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxUpload + multipartFieldAllowance); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig), errors.Is(err, multipart.ErrMessageTooLarge):
			return nil, upload.ErrTooLarge
		case errors.Is(err, http.ErrNotMultipart):
			return nil, upload.ErrNoImage
		default:
			return nil, err
		}
	}
	file, fh, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	_ = file.Close()
	return fh, nil
}

func isUploadRejection(err error) bool {
	return errors.Is(err, upload.ErrNoImage) || errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrNotImage)
}

// uploadErrorMessage maps upload failures to the messages the admin form shows.
func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, upload.ErrNoImage):
		return msgNoImage
	case errors.Is(err, upload.ErrTooLarge):
		return msgFileTooLarge
	case errors.Is(err, upload.ErrNotImage):
		return msgOnlyImages
	default:
		return msgInvalidRequest
	}
}

// DeletePortfolioItem handles gallery deletions
//
// @Summary Delete a portfolio item
// @Description Removes the item and, in development, its image file
// @Tags Portfolio
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} SuccessResponse "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to delete portfolio item"
// @Router /portfolio/{id} [delete]
func (h *Handler) DeletePortfolioItem(w http.ResponseWriter, r *http.Request) {
	resp := NewResponseWriter(w, r)

	id, ok := parseItemID(r)
	if !ok {
		resp.BadRequest(msgInvalidID)
		return
	}

	item, err := h.store.GetPortfolioItem(r.Context(), id)
	if errors.Is(err, store.ErrItemNotFound) {
		resp.NotFound(msgItemNotFound)
		return
	}
	if err != nil {
		resp.InternalError(msgDeleteFailed, err)
		return
	}

	h.saver.Remove(item.ImageURL)

	deleted, err := h.store.DeletePortfolioItem(r.Context(), id)
	if err != nil {
		resp.InternalError(msgDeleteFailed, err)
		return
	}
	if !deleted {
		resp.NotFound(msgItemNotFound)
		return
	}

	logging.Ctx(r.Context()).Info().Int("item_id", id).Msg("portfolio item deleted")
	h.publish(r.Context(), eventprocessor.NewPortfolioDeletedEvent(id))
	resp.Success()
}
