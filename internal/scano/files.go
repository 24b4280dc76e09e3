// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

package scano

import (
	"context"
	"fmt"
	"net/url"

	"github.com/scano-io/scanogate/internal/models"
)

// FilesAPI covers binary downloads proxied through the gateway: report
// exports and user avatars.
type FilesAPI interface {
	ExportTheme(ctx context.Context, token, themeID, format string) ([]byte, string, error)
	Avatar(ctx context.Context, token, fileID string) ([]byte, string, error)
}

// ExportTheme requests a report export for a theme and returns the document
// bytes with their content type. format is docx or pdf.
func (c *Client) ExportTheme(ctx context.Context, token, themeID, format string) ([]byte, string, error) {
	switch format {
	case models.FileFormatDocx, models.FileFormatPDF:
	default:
		return nil, "", &FetchError{
			Entity:    "files",
			Operation: "export",
			Err:       fmt.Errorf("unsupported export format %q", format),
		}
	}
	path := "/themes/" + url.PathEscape(themeID) + "/export?format=" + url.QueryEscape(format)
	return c.doBlob(ctx, "files", "export", path, token)
}

// Avatar fetches a user avatar blob by file id.
func (c *Client) Avatar(ctx context.Context, token, fileID string) ([]byte, string, error) {
	return c.doBlob(ctx, "files", "avatar", "/files/avatar/"+url.PathEscape(fileID), token)
}
