package types

// Vec3 三维向量
// 2D 游戏中 Z 只用于绘制顺序（位置）或被忽略（尺寸）
type Vec3 struct {
	X, Y, Z float64
}

// TextureID 渲染器分配的纹理句柄
type TextureID int

// InvalidTexture 加载失败时返回的哨兵句柄
// 渲染器遇到它时绘制占位色块，不会中断游戏
const InvalidTexture TextureID = 0

// Valid 返回句柄是否指向一张已加载的纹理
func (t TextureID) Valid() bool {
	return t != InvalidTexture
}

// Texture 纹理句柄及其原始像素尺寸
// 加载失败时 ID 为 InvalidTexture，Width/Height 为 0
type Texture struct {
	ID     TextureID
	Width  int
	Height int
}
