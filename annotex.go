// Package annotex 将带高亮标记的字符流编译为嵌套标记输出
//
// 这个包是协作批注工具导出管线的核心：上游 HTML→中间标记转换器
// 在文本里插入 HLSTART{n}/HLEND{n}/ANNOT{n} 标记（可能重叠、可能
// 嵌套不当、可能不配对），本库把它编译为 (a) 活跃高亮集恒定的最小
// 文本区间划分，以及 (b) 可直接喂给下游文档编译器的嵌套包裹命令串。
//
// 核心功能：
//   - 标记词法分析：任何畸形标记降级为字面文本，永不失败
//   - 区间构建：每个高亮开始/结束事件强制一次区间边界，悬空结束、
//     重复开始、EOF 未闭合都被静默容忍
//   - 嵌套生成：按活跃集大小分层包裹，结构边界处拆分，批注命令
//     按区间追加；查不到的批注索引静默跳过
//
// 主要 API：
//   - Compile(): 完整管线，(source, table) → markup
//   - Lex() / BuildRegions() / CompileRegions(): 分阶段入口
//
// 示例：
//
//	table := map[int]annotex.HighlightMeta{
//	    1: {Tag: "tomato", Author: "ada"},
//	}
//	markup := annotex.Compile("plain HLSTART{1}lit HLEND{1}plain", table)
//
// 编译是纯同步函数，每次调用分配并丢弃自己的全部中间状态，
// 独立输入之间可以无协调地并行编译。
package annotex

// Compile 完整管线：带标记源文本 + 元数据表 → 标记输出串
//
// 参数：
//   - source: 含 HLSTART{n}/HLEND{n}/ANNOT{n} 标记的源文本
//   - table: 高亮索引 → 元数据，nil 按空表处理
//   - opts: 可选配置
//
// 返回：
//   - string: 输出方言中的标记串，供下游文档编译器原样消费
//
// 对任何输入都不会 panic 或报错：标记畸形、不配对、索引查不到
// 全部按降级规则静默处理。
func Compile(source string, table map[int]HighlightMeta, opts ...Option) string {
	return CompileRegions(BuildRegions(Lex(source)), table, opts...)
}
