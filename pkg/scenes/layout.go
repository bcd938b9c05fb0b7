package scenes

import (
	"math"

	"github.com/decker502/portfolio/pkg/config"
)

// Rect 轴对齐矩形（页面坐标或屏幕坐标，取决于使用处）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Offset 平移矩形
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// BlockKind 区块内元素类型
type BlockKind int

const (
	BlockHero BlockKind = iota
	BlockTitle
	BlockText
	BlockStat
	BlockSkill
	BlockProject
	BlockEmail
)

// IsCard 卡片类元素单独做进入视口动画
func (k BlockKind) IsCard() bool {
	return k == BlockStat || k == BlockSkill || k == BlockProject
}

// Block 区块中的一个元素
type Block struct {
	Kind  BlockKind
	Key   string // 文本键
	Index int    // 同类元素中的序号
	Rect  Rect   // 页面坐标
}

// RevealID 进入视口动画使用的标识
func (b Block) RevealID(sectionID string) string {
	return sectionID + "/" + b.Key
}

// Section 页面区块
type Section struct {
	ID     string
	NavKey string
	Top    float64
	Height float64
	Blocks []Block
}

// Bounds 区块在页面坐标中的矩形
func (s Section) Bounds(width float64) Rect {
	return Rect{Y: s.Top, W: width, H: s.Height}
}

// 区块 ID（导航顺序）
const (
	SectionHome     = "home"
	SectionAbout    = "about"
	SectionSkills   = "skills"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

var sectionNavKeys = []struct{ id, key string }{
	{SectionHome, "NAV_HOME"},
	{SectionAbout, "NAV_ABOUT"},
	{SectionSkills, "NAV_SKILLS"},
	{SectionProjects, "NAV_PROJECTS"},
	{SectionContact, "NAV_CONTACT"},
}

var (
	statKeys    = []string{"STAT_YEARS", "STAT_PROJECTS", "STAT_CERTS"}
	skillKeys   = []string{"SKILL_CLOUD", "SKILL_DEVOPS", "SKILL_AI", "SKILL_BACKEND"}
	projectKeys = []string{"PROJECT_1", "PROJECT_2", "PROJECT_3"}
)

// PageLayout 整个页面的布局
type PageLayout struct {
	Width, Height float64 // 视口尺寸
	Mobile        bool
	Sections      []Section
	Total         float64 // 页面总高度
}

// BuildLayout 根据视口尺寸计算页面布局
// 区块自上而下排列，首屏区块至少占满一个视口
func BuildLayout(width, height float64) *PageLayout {
	l := &PageLayout{
		Width:  width,
		Height: height,
		Mobile: width < config.MobileBreakpoint,
	}

	padX := config.SectionPaddingX
	if l.Mobile {
		padX = config.SectionPaddingX / 2
	}
	contentW := math.Max(0, math.Min(width-2*padX, config.ContentMaxWidth))
	x0 := (width - contentW) / 2

	y := 0.0
	for _, nav := range sectionNavKeys {
		sec := Section{ID: nav.id, NavKey: nav.key, Top: y}
		cursor := y + config.SectionPaddingY

		switch nav.id {
		case SectionHome:
			heroH := config.TitleFontSize*1.4*2 + config.BodyFontSize*1.6*2
			sec.Height = math.Max(height, config.SectionMinHeight)
			heroY := y + (sec.Height-heroH)/2
			sec.Blocks = append(sec.Blocks, Block{Kind: BlockHero, Key: "HERO", Rect: Rect{X: x0, Y: heroY, W: contentW, H: heroH}})
			l.Sections = append(l.Sections, sec)
			y += sec.Height
			continue

		case SectionAbout:
			cursor = l.appendTitle(&sec, "ABOUT_TITLE", x0, cursor, contentW)
			cursor = l.appendText(&sec, BlockText, "ABOUT_BODY", x0, cursor, contentW)
			cursor = l.appendCards(&sec, BlockStat, statKeys, x0, cursor, contentW, 3, config.StatCardHeight)

		case SectionSkills:
			cursor = l.appendTitle(&sec, "SKILLS_TITLE", x0, cursor, contentW)
			cursor = l.appendCards(&sec, BlockSkill, skillKeys, x0, cursor, contentW, 4, config.SkillCardHeight)

		case SectionProjects:
			cursor = l.appendTitle(&sec, "PROJECTS_TITLE", x0, cursor, contentW)
			cursor = l.appendCards(&sec, BlockProject, projectKeys, x0, cursor, contentW, 3, config.CardHeight)

		case SectionContact:
			cursor = l.appendTitle(&sec, "CONTACT_TITLE", x0, cursor, contentW)
			cursor = l.appendText(&sec, BlockText, "CONTACT_BODY", x0, cursor, contentW)
			cursor = l.appendText(&sec, BlockEmail, "EMAIL", x0, cursor, contentW)
		}

		sec.Height = math.Max(cursor+config.SectionPaddingY-y, config.SectionMinHeight)
		l.Sections = append(l.Sections, sec)
		y += sec.Height
	}

	l.Total = y
	return l
}

func (l *PageLayout) appendTitle(sec *Section, key string, x, y, w float64) float64 {
	h := config.TitleFontSize * 1.4
	sec.Blocks = append(sec.Blocks, Block{Kind: BlockTitle, Key: key, Rect: Rect{X: x, Y: y, W: w, H: h}})
	return y + h + config.CardGap
}

// appendText 正文块预留三行高度
func (l *PageLayout) appendText(sec *Section, kind BlockKind, key string, x, y, w float64) float64 {
	h := config.BodyFontSize * 1.6 * 3
	if kind == BlockEmail {
		h = config.BodyFontSize * 2.4
	}
	sec.Blocks = append(sec.Blocks, Block{Kind: kind, Key: key, Rect: Rect{X: x, Y: y, W: w, H: h}})
	return y + h + config.CardGap
}

// appendCards 按列排布卡片，移动端单列
func (l *PageLayout) appendCards(sec *Section, kind BlockKind, keys []string, x, y, w float64, columns int, cardH float64) float64 {
	if l.Mobile {
		columns = 1
	} else if w < 900 && columns > 2 {
		columns = 2
	}
	cardW := (w - config.CardGap*float64(columns-1)) / float64(columns)

	for i, key := range keys {
		col, row := i%columns, i/columns
		rect := Rect{
			X: x + float64(col)*(cardW+config.CardGap),
			Y: y + float64(row)*(cardH+config.CardGap),
			W: cardW,
			H: cardH,
		}
		sec.Blocks = append(sec.Blocks, Block{Kind: kind, Key: key, Index: i, Rect: rect})
	}

	rows := (len(keys) + columns - 1) / columns
	return y + float64(rows)*(cardH+config.CardGap)
}

// MaxScroll 最大滚动距离
func (l *PageLayout) MaxScroll() float64 {
	return math.Max(0, l.Total-l.Height)
}

// ClampScroll 将滚动位置限制在 [0, MaxScroll]
func (l *PageLayout) ClampScroll(y float64) float64 {
	return math.Max(0, math.Min(y, l.MaxScroll()))
}

// Section 按 ID 查找区块
func (l *PageLayout) Section(id string) (Section, bool) {
	for _, s := range l.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// ActiveSection 返回滚动位置对应的激活区块
// 判定位置为 scrollY + ActiveSectionOffset，落在 [top, top+height) 内的区块激活；
// 没有区块匹配时返回 false，调用方保持之前的激活项
func (l *PageLayout) ActiveSection(scrollY float64) (string, bool) {
	pos := scrollY + config.ActiveSectionOffset
	for _, s := range l.Sections {
		if pos >= s.Top && pos < s.Top+s.Height {
			return s.ID, true
		}
	}
	return "", false
}

// NavTarget 点击导航链接后的目标滚动位置
func (l *PageLayout) NavTarget(id string) (float64, bool) {
	s, ok := l.Section(id)
	if !ok {
		return 0, false
	}
	return l.ClampScroll(s.Top - config.NavScrollOffset), true
}

// NavHasShadow 滚动超过阈值时导航栏显示阴影
func NavHasShadow(scrollY float64) bool {
	return scrollY > config.NavShadowThreshold
}
