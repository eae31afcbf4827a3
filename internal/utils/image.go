package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"strings"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"
)

// Signature images are capped to this bounding box before storage.
const (
	signatureMaxWidth  = 400
	signatureMaxHeight = 200
)

// CompressSignature re-encodes a base64 data-URL image as a JPEG that fits
// within 400x200, flattened onto a white background so transparent PNG
// strokes stay visible. quality is the JPEG quality (1-100).
//
// Compression is cosmetic: on any failure (bad payload, undecodable image,
// cancelled context) the original payload is returned unchanged rather than
// an error, so the signing flow never blocks on it.
func CompressSignature(ctx context.Context, payload string, quality int) string {
	if ctx.Err() != nil {
		return payload
	}
	if !strings.HasPrefix(payload, "data:image/") {
		return payload
	}
	comma := strings.Index(payload, ",")
	if comma < 0 || comma == len(payload)-1 {
		return payload
	}

	raw, err := base64.StdEncoding.DecodeString(payload[comma+1:])
	if err != nil {
		return payload
	}
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return payload
	}

	width, height := fitWithin(src.Bounds().Dx(), src.Bounds().Dy(), signatureMaxWidth, signatureMaxHeight)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return payload
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// fitWithin shrinks (never grows) a width/height pair to fit the given box,
// preserving aspect ratio.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return maxW, maxH
	}
	if w > maxW {
		h = h * maxW / w
		w = maxW
	}
	if h > maxH {
		w = w * maxH / h
		h = maxH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
