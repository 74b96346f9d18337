package controller

import (
	"io"

	"gps-tracking-be/internal/entity"
	"gps-tracking-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/h2non/filetype"
)

func paramID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid id %q", ctx.Params("id"))
	}
	return id, nil
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return apperror.Validation("invalid request body: %s", err.Error())
	}
	return nil
}

func parseQuery(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		return apperror.Validation("invalid query: %s", err.Error())
	}
	return nil
}

// receiptFromForm reads the optional "receipt" part of a multipart request.
// Only its metadata is kept. The content type is sniffed from the first bytes.
func receiptFromForm(ctx *fiber.Ctx) (*entity.ReceiptFile, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, nil
	}
	files := form.File["receipt"]
	if len(files) == 0 {
		return nil, nil
	}
	header := files[0]

	receipt := &entity.ReceiptFile{
		FileName:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperror.Validation("unreadable receipt file: %s", err.Error())
	}
	defer file.Close()

	head := make([]byte, 261)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, apperror.Validation("unreadable receipt file: %s", err.Error())
	}
	if kind, err := filetype.Match(head[:n]); err == nil && kind != filetype.Unknown {
		receipt.ContentType = kind.MIME.Value
	}
	return receipt, nil
}
