// init_test.go - 测试环境初始化
//
// 测试无法使用项目根目录的 embed 声明，这里用内存文件系统模拟嵌入资源。

package embedded

import "testing/fstest"

// testAssets 模拟 assets/ 目录
var testAssets = fstest.MapFS{
	"assets/Sprites/coins.png": {Data: []byte("coins")},
}

// testData 模拟 data/ 目录
var testData = fstest.MapFS{
	"data/game.yaml": {Data: []byte("seed: 7\n")},
}

// initTestEmbedded 用内存文件系统初始化 embedded 包
func initTestEmbedded() {
	Init(testAssets, testData)
}

// resetEmbedded 恢复未初始化状态
func resetEmbedded() {
	assetsFS = nil
	dataFS = nil
	initialized = false
}
