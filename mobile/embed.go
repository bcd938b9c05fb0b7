//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// //go:embed 不能引用上级目录，构建前由 go generate 把 ../data 复制到此目录。
package mobile

import "embed"

//go:generate rm -rf data
//go:generate cp -r ../data data

//go:embed data
var dataFS embed.FS
