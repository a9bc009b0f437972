package annotex

import (
	"github.com/riverfjs/annotex-go/internal/lexer"
	"github.com/riverfjs/annotex-go/internal/region"
	"github.com/riverfjs/annotex-go/internal/render"
)

// 导出类型别名
type (
	Token     = lexer.Token
	TokenKind = lexer.Kind
	Region    = region.Region
)

// Token kind re-exports.
const (
	KindText           = lexer.KindText
	KindHighlightStart = lexer.KindHighlightStart
	KindHighlightEnd   = lexer.KindHighlightEnd
	KindAnnotation     = lexer.KindAnnotation
)

// Lex 将源文本切分为标记 token 序列
//
// 纯扫描：畸形标记语法按字面文本处理，永不失败。
func Lex(source string) []Token {
	return lexer.Scan(source)
}

// BuildRegions 将 token 序列折叠为有序 Region 列表
//
// 每个 Region 是活跃高亮集恒定的最大文本运行。空文本区间
// 永远不会出现在结果里。
func BuildRegions(tokens []Token) []Region {
	return region.Build(tokens)
}

// CompileRegions 将预构建的 Region 列表渲染为标记输出串
//
// 供已经持有 Region 列表的调用方使用；Compile() 是
// Lex → BuildRegions → CompileRegions 的组合。
func CompileRegions(regions []Region, table map[int]HighlightMeta, opts ...Option) string {
	options := applyOptions(opts...)
	r := render.New(options.Config, table)
	r.SetFlattenComments(options.CommentMarkdown)
	r.SetLogger(Logger)
	return r.Render(regions)
}

// Reconstruct 拼接各区间文本，得到去标记后的源内容
func Reconstruct(regions []Region) string {
	return region.Reconstruct(regions)
}
