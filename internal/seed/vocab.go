package seed

// Fixed small vocabularies for generated text. Cross products are tiny, so
// collisions are expected and fine; nothing looks names up by these strings.

var surnames = []string{"张", "王", "李", "赵", "刘", "陈", "杨", "黄", "周", "吴"}

var givenNameChars = []string{"伟", "强", "军", "芳", "娜", "磊", "静", "敏", "杰", "丽"}

var shopPrefixes = []string{"鸿运", "百顺", "祥和", "金桥", "利民", "惠众", "福满", "顺发"}

var shopSuffixes = []string{"烟酒商行", "便利店", "综合超市", "副食店", "商贸部"}

var streetNames = []string{"和平路", "人民路", "胜利街", "文化街", "建设路", "向阳巷"}
