package render

import (
	"image"
	"math"
	"testing"

	"github.com/gonewx/skeleton-run/pkg/components"
	"github.com/gonewx/skeleton-run/pkg/types"
)

func TestQuadVertices_FlipsToScreen(t *testing.T) {
	sprite := components.SpriteComponent{
		Position:   types.Vec3{X: 10, Y: 20},
		Dimensions: types.Vec3{X: 50, Y: 30},
	}
	cell := image.Rect(0, 0, 64, 32)

	vs := QuadVertices(sprite, cell, 100, 1, 1, 1, 1)
	if len(vs) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(vs))
	}

	tests := []struct {
		name       string
		dstX, dstY float32
		srcX, srcY float32
	}{
		{"左下", 10, 80, 0, 32},
		{"右下", 60, 80, 64, 32},
		{"左上", 10, 50, 0, 0},
		{"右上", 60, 50, 64, 0},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := vs[i]
			if v.DstX != tt.dstX || v.DstY != tt.dstY {
				t.Errorf("dst = (%v, %v), want (%v, %v)", v.DstX, v.DstY, tt.dstX, tt.dstY)
			}
			if v.SrcX != tt.srcX || v.SrcY != tt.srcY {
				t.Errorf("src = (%v, %v), want (%v, %v)", v.SrcX, v.SrcY, tt.srcX, tt.srcY)
			}
		})
	}
}

func TestQuadVertices_SheetCell(t *testing.T) {
	sprite := components.SpriteComponent{
		Dimensions: types.Vec3{X: 10, Y: 10},
	}
	// 第三格（宽 20）
	cell := image.Rect(40, 0, 60, 16)

	vs := QuadVertices(sprite, cell, 10, 1, 1, 1, 1)

	if vs[0].SrcX != 40 || vs[1].SrcX != 60 {
		t.Errorf("src x range = [%v, %v], want [40, 60]", vs[0].SrcX, vs[1].SrcX)
	}
	if vs[0].SrcY != 16 || vs[2].SrcY != 0 {
		t.Errorf("src y: bottom=%v top=%v, want 16 and 0", vs[0].SrcY, vs[2].SrcY)
	}
}

func TestQuadVertices_Rotation(t *testing.T) {
	sprite := components.SpriteComponent{
		Position:   types.Vec3{X: 50, Y: 50},
		Dimensions: types.Vec3{X: 10, Y: 20},
		Angle:      90,
	}

	vs := QuadVertices(sprite, image.Rect(0, 0, 1, 1), 100, 1, 1, 1, 1)

	// 逆时针旋转 90 度后右下角落在锚点正上方
	const eps = 1e-4
	if math.Abs(float64(vs[1].DstX)-50) > eps || math.Abs(float64(vs[1].DstY)-40) > eps {
		t.Errorf("rotated LR corner = (%v, %v), want (50, 40)", vs[1].DstX, vs[1].DstY)
	}
	// 左上角落在锚点左侧
	if math.Abs(float64(vs[2].DstX)-30) > eps || math.Abs(float64(vs[2].DstY)-50) > eps {
		t.Errorf("rotated UL corner = (%v, %v), want (30, 50)", vs[2].DstX, vs[2].DstY)
	}
}

func TestQuadVertices_Color(t *testing.T) {
	vs := QuadVertices(components.SpriteComponent{}, image.Rect(0, 0, 1, 1), 0, 1, 0, 1, 0.5)
	for i, v := range vs {
		if v.ColorR != 1 || v.ColorG != 0 || v.ColorB != 1 || v.ColorA != 0.5 {
			t.Errorf("vertex %d color = (%v, %v, %v, %v)", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

func TestQuadIndices(t *testing.T) {
	if len(quadIndices) != 6 {
		t.Fatalf("expected 6 indices, got %d", len(quadIndices))
	}
	for _, idx := range quadIndices {
		if idx > 3 {
			t.Errorf("index %d out of range", idx)
		}
	}
}
