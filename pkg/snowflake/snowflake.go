package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

func GenID() int64 {
	return node.Generate().Int64()
}

// GenIDString 文档 ID（Firestore 文档主键用字符串）
func GenIDString() string {
	return node.Generate().String()
}
