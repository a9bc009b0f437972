// Package notes 将批注评论中的 Markdown 扁平化为纯文本
//
// 协作批注工具里的评论是 Markdown 写的；嵌入批注命令前需要去掉
// 格式语法，只留可读文本。强调/删除线剥掉语法保留内容，链接变为
// "text (url)"，行内代码保留字面内容，块级结构折叠为单行。解析
// 失败时返回原文，扁平化永不失败。
package notes

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// Flatten renders comment markdown down to plain text.
func Flatten(comment string) string {
	source := []byte(comment)
	reader := text.NewReader(source)
	node := md.Parser().Parse(reader)

	var out strings.Builder
	err := ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return flattenNode(&out, source, n, entering)
	})
	if err != nil {
		return comment
	}
	return strings.Join(strings.Fields(out.String()), " ")
}

func flattenNode(out *strings.Builder, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Text:
		if entering {
			out.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				out.WriteByte(' ')
			}
		}

	case *ast.String:
		if entering {
			out.Write(node.Value)
		}

	case *ast.CodeSpan:
		if entering {
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if textNode, ok := c.(*ast.Text); ok {
					out.Write(textNode.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		}

	case *ast.Link:
		if !entering {
			if url := string(node.Destination); url != "" {
				out.WriteString(" (")
				out.WriteString(url)
				out.WriteByte(')')
			}
		}

	case *ast.AutoLink:
		if entering {
			out.Write(node.URL(source))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Image:
		// 图片在纯文本评论里没有意义，仅保留替代文本（子节点）

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				out.Write(line.Value(source))
				out.WriteByte(' ')
			}
			return ast.WalkSkipChildren, nil
		}

	case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.Blockquote:
		if !entering {
			out.WriteByte(' ')
		}

	case *ast.RawHTML, *ast.HTMLBlock:
		// 评论里的内嵌 HTML 一律忽略
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}
