/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package registry

import (
	"context"
)

// VisibleFunc decides whether a schema element can be observed by the viewer carried in ctx. It
// must be a pure function of ctx.
type VisibleFunc func(ctx context.Context) bool

func isVisible(ctx context.Context, visible VisibleFunc) bool {
	return visible == nil || visible(ctx)
}

// IsVisible returns true if t itself is visible to the viewer in ctx.
func IsVisible(ctx context.Context, t MetaType) bool {
	return isVisible(ctx, t.Info().Visible)
}

// IsFieldVisible returns true if field is visible to the viewer in ctx.
func IsFieldVisible(ctx context.Context, field *Field) bool {
	return isVisible(ctx, field.Visible)
}
