package storefront

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"go.uber.org/zap"
)

// ImageValidator checks that a website item's image points at something
// renderable: empty is fine, external http(s) URLs pass as-is, anything else
// must resolve to a public stored file. Invalid images are cleared and a
// warning message is returned instead of an error.
type ImageValidator struct {
	fileStore PublicFileStore
	logger    *zap.Logger
}

// NewImageValidator creates a new ImageValidator
func NewImageValidator(fileStore PublicFileStore, logger *zap.Logger) *ImageValidator {
	return &ImageValidator{
		fileStore: fileStore,
		logger:    logger,
	}
}

// Validate checks the website item's image. skipCheck skips the lookup
// entirely (SYNC import path). The returned warning is empty when the image
// is valid.
func (v *ImageValidator) Validate(ctx context.Context, item *catalog.WebsiteItem, skipCheck bool) (string, error) {
	if skipCheck {
		return "", nil
	}
	if item.WebsiteImage == "" {
		return "", nil
	}
	if item.HasExternalImage() {
		return "", nil
	}

	fileKey := strings.TrimPrefix(item.WebsiteImage, "/files/")
	fileKey = strings.TrimPrefix(fileKey, "/")

	exists, err := v.fileStore.Exists(ctx, fileKey)
	if err != nil {
		return "", err
	}
	if exists {
		return "", nil
	}

	warning := fmt.Sprintf("Website Image %s for Item %s does not exist in public storage and was cleared",
		item.WebsiteImage, item.ItemCode)
	v.logger.Warn("clearing unresolvable website image",
		zap.String("item_code", item.ItemCode),
		zap.String("website_image", item.WebsiteImage),
	)
	item.ClearWebsiteImage()
	return warning, nil
}
