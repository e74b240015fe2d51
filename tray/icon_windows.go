//go:build windows

package tray

import (
	"errors"
	"image"
	"image/draw"
	"unsafe"

	"golang.org/x/sys/windows"
)

// iconFromImage converts a rendered icon into an HICON. The caller owns
// the returned handle and must release it with destroyIconHandle.
func iconFromImage(img image.Image) (windows.Handle, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return 0, errors.New("empty icon image")
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	// 32bpp BGRA, rows top-down, premultiplied alpha as RGBA already is.
	pixels := make([]byte, len(rgba.Pix))
	for i := 0; i < len(rgba.Pix); i += 4 {
		pixels[i+0] = rgba.Pix[i+2]
		pixels[i+1] = rgba.Pix[i+1]
		pixels[i+2] = rgba.Pix[i+0]
		pixels[i+3] = rgba.Pix[i+3]
	}

	colorBmp, _, _ := pCreateBitmap.Call(
		uintptr(w), uintptr(h), 1, 32,
		uintptr(unsafe.Pointer(&pixels[0])),
	)
	if colorBmp == 0 {
		return 0, errors.New("CreateBitmap(color) failed")
	}
	maskBmp, _, _ := pCreateBitmap.Call(uintptr(w), uintptr(h), 1, 1, 0)
	if maskBmp == 0 {
		pDeleteObject.Call(colorBmp)
		return 0, errors.New("CreateBitmap(mask) failed")
	}

	info := iconInfo{
		FIcon: 1,
		Mask:  windows.Handle(maskBmp),
		Color: windows.Handle(colorBmp),
	}
	icon, _, _ := pCreateIconIndirect.Call(uintptr(unsafe.Pointer(&info)))

	// The HICON owns copies of the bitmap data.
	pDeleteObject.Call(colorBmp)
	pDeleteObject.Call(maskBmp)

	if icon == 0 {
		return 0, errors.New("CreateIconIndirect failed")
	}
	return windows.Handle(icon), nil
}

// bitmapFromImage converts a menu glyph into a 32bpp HBITMAP for
// SetMenuItemBitmaps. The caller releases it with pDeleteObject.
func bitmapFromImage(img image.Image) (windows.Handle, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return 0, errors.New("empty glyph image")
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	pixels := make([]byte, len(rgba.Pix))
	for i := 0; i < len(rgba.Pix); i += 4 {
		pixels[i+0] = rgba.Pix[i+2]
		pixels[i+1] = rgba.Pix[i+1]
		pixels[i+2] = rgba.Pix[i+0]
		pixels[i+3] = rgba.Pix[i+3]
	}

	bmp, _, _ := pCreateBitmap.Call(
		uintptr(w), uintptr(h), 1, 32,
		uintptr(unsafe.Pointer(&pixels[0])),
	)
	if bmp == 0 {
		return 0, errors.New("CreateBitmap(glyph) failed")
	}
	return windows.Handle(bmp), nil
}

func destroyIconHandle(h windows.Handle) {
	if h != 0 {
		pDestroyIcon.Call(uintptr(h))
	}
}
