// Package curriculum holds the KHTN (Khoa học tự nhiên) lesson catalog for
// grades 6 through 9, organized as chapters per grade. The data mirrors the
// Vietnamese middle-school natural science program.
package curriculum

// Subject classifies a chapter by discipline.
type Subject string

const (
	Physics   Subject = "Physics"
	Chemistry Subject = "Chemistry"
	Biology   Subject = "Biology"
	General   Subject = "General"
)

// Lesson is a single teachable unit within a chapter.
type Lesson struct {
	ID    int
	Title string
}

// Chapter groups lessons under a roman-numeral identifier.
type Chapter struct {
	ID      string
	Title   string
	Subject Subject
	Lessons []Lesson
}

// Grades lists the supported grade levels in ascending order.
func Grades() []string {
	return []string{"6", "7", "8", "9"}
}

// Chapters returns the chapter list for a grade, or nil if the grade is
// not part of the program.
func Chapters(grade string) []Chapter {
	return byGrade[grade]
}

// FindLesson locates a lesson by grade and lesson id. The second return
// value reports whether it was found.
func FindLesson(grade string, lessonID int) (Lesson, bool) {
	for _, ch := range byGrade[grade] {
		for _, l := range ch.Lessons {
			if l.ID == lessonID {
				return l, true
			}
		}
	}
	return Lesson{}, false
}

// LessonCount returns the total number of lessons available for a grade.
func LessonCount(grade string) int {
	n := 0
	for _, ch := range byGrade[grade] {
		n += len(ch.Lessons)
	}
	return n
}

var byGrade = map[string][]Chapter{
	"6": {
		{ID: "I", Title: "Chương I: Mở đầu về KHTN", Subject: General, Lessons: []Lesson{
			{1, "Giới thiệu về Khoa học tự nhiên"},
			{2, "An toàn trong phòng thực hành"},
			{3, "Sử dụng kính lúp"},
			{4, "Sử dụng kính hiển vi quang học"},
			{5, "Đo chiều dài"},
			{6, "Đo khối lượng"},
			{7, "Đo thời gian"},
			{8, "Đo nhiệt độ"},
		}},
		{ID: "II", Title: "Chương II: Chất quanh ta", Subject: Chemistry, Lessons: []Lesson{
			{9, "Sự đa dạng của chất"},
			{10, "Các thể của chất và sự chuyển thể"},
			{11, "Oxygen. Không khí"},
		}},
		{ID: "III", Title: "Chương III: Vật liệu, Nhiên liệu", Subject: Chemistry, Lessons: []Lesson{
			{12, "Một số vật liệu"},
			{13, "Một số nguyên liệu"},
			{14, "Một số nhiên liệu"},
			{15, "Một số lương thực, thực phẩm"},
		}},
		{ID: "IV", Title: "Chương IV: Hỗn hợp", Subject: Chemistry, Lessons: []Lesson{
			{16, "Hỗn hợp các chất"},
			{17, "Tách chất khỏi hỗn hợp"},
		}},
		{ID: "V", Title: "Chương V: Tế bào", Subject: Biology, Lessons: []Lesson{
			{18, "Tế bào - Đơn vị cơ bản của sự sống"},
			{19, "Cấu tạo và chức năng các thành phần của tế bào"},
			{20, "Sự lớn lên và sinh sản của tế bào"},
		}},
		{ID: "VI", Title: "Chương VI: Từ tế bào đến cơ thể", Subject: Biology, Lessons: []Lesson{
			{22, "Cơ thể sinh vật"},
			{23, "Tổ chức cơ thể đa bào"},
		}},
		{ID: "VII", Title: "Chương VII: Đa dạng thế giới sống", Subject: Biology, Lessons: []Lesson{
			{25, "Hệ thống phân loại sinh vật"},
			{27, "Vi khuẩn"},
			{29, "Virus"},
			{30, "Nguyên sinh vật"},
			{32, "Nấm"},
			{34, "Thực vật"},
			{36, "Động vật"},
			{38, "Đa dạng sinh học"},
		}},
		{ID: "VIII", Title: "Chương VIII: Lực trong đời sống", Subject: Physics, Lessons: []Lesson{
			{40, "Lực là gì?"},
			{41, "Biểu diễn lực"},
			{42, "Biến dạng của lò xo"},
			{43, "Trọng lượng, lực hấp dẫn"},
			{44, "Lực ma sát"},
		}},
		{ID: "IX", Title: "Chương IX: Năng lượng", Subject: Physics, Lessons: []Lesson{
			{46, "Năng lượng và sự truyền năng lượng"},
			{47, "Một số dạng năng lượng"},
			{48, "Sự chuyển hóa năng lượng"},
			{50, "Năng lượng tái tạo"},
		}},
		{ID: "X", Title: "Chương X: Trái đất và Bầu trời", Subject: Physics, Lessons: []Lesson{
			{52, "Chuyển động nhìn thấy của Mặt trời"},
			{53, "Mặt trăng"},
			{54, "Hệ Mặt trời"},
			{55, "Ngân Hà"},
		}},
	},
	"7": {
		{ID: "I", Title: "Chương I: Nguyên tử & Bảng tuần hoàn", Subject: Chemistry, Lessons: []Lesson{
			{1, "Phương pháp và kĩ năng học tập môn KHTN"},
			{2, "Nguyên tử"},
			{3, "Nguyên tố hóa học"},
			{4, "Sơ lược về bảng tuần hoàn các nguyên tố hóa học"},
		}},
		{ID: "II", Title: "Chương II: Phân tử & Liên kết hóa học", Subject: Chemistry, Lessons: []Lesson{
			{5, "Phân tử - Đơn chất - Hợp chất"},
			{6, "Giới thiệu về liên kết hóa học"},
			{7, "Hóa trị và công thức hóa học"},
		}},
		{ID: "III", Title: "Chương III: Tốc độ", Subject: Physics, Lessons: []Lesson{
			{8, "Tốc độ chuyển động"},
			{9, "Đo tốc độ"},
			{10, "Đồ thị quãng đường - thời gian"},
			{11, "Thảo luận về ảnh hưởng của tốc độ trong an toàn giao thông"},
		}},
		{ID: "IV", Title: "Chương IV: Âm thanh", Subject: Physics, Lessons: []Lesson{
			{12, "Sóng âm"},
			{13, "Độ to và độ cao của âm"},
			{14, "Phản xạ âm, chống ô nhiễm tiếng ồn"},
		}},
		{ID: "V", Title: "Chương V: Ánh sáng", Subject: Physics, Lessons: []Lesson{
			{15, "Năng lượng ánh sáng. Tia sáng, vùng tối"},
			{16, "Sự phản xạ ánh sáng"},
			{17, "Ảnh của vật qua gương phẳng"},
		}},
		{ID: "VI", Title: "Chương VI: Từ trường", Subject: Physics, Lessons: []Lesson{
			{18, "Nam châm"},
			{19, "Từ trường"},
			{20, "Chế tạo nam châm điện đơn giản"},
		}},
		{ID: "VII", Title: "Chương VII: Trao đổi chất & Chuyển hóa năng lượng", Subject: Biology, Lessons: []Lesson{
			{21, "Khái quát về trao đổi chất và chuyển hóa năng lượng"},
			{22, "Quang hợp ở thực vật"},
			{23, "Hô hấp tế bào"},
			{24, "Trao đổi khí ở sinh vật"},
			{25, "Trao đổi nước và chất dinh dưỡng ở thực vật"},
			{26, "Trao đổi nước và chất dinh dưỡng ở động vật"},
		}},
		{ID: "VIII", Title: "Chương VIII: Cảm ứng ở sinh vật", Subject: Biology, Lessons: []Lesson{
			{27, "Cảm ứng ở thực vật"},
			{28, "Cảm ứng ở động vật"},
			{29, "Tập tính ở động vật"},
		}},
		{ID: "IX", Title: "Chương IX: Sinh trưởng và phát triển", Subject: Biology, Lessons: []Lesson{
			{30, "Sinh trưởng và phát triển ở thực vật"},
			{31, "Sinh trưởng và phát triển ở động vật"},
		}},
		{ID: "X", Title: "Chương X: Sinh sản ở sinh vật", Subject: Biology, Lessons: []Lesson{
			{32, "Sinh sản vô tính ở sinh vật"},
			{33, "Sinh sản hữu tính ở sinh vật"},
			{34, "Các yếu tố ảnh hưởng đến sinh sản"},
		}},
	},
	"8": {
		{ID: "I", Title: "Chương I: Phản ứng hóa học", Subject: Chemistry, Lessons: []Lesson{
			{1, "Biến đổi vật lí và biến đổi hóa học"},
			{2, "Phản ứng hóa học"},
			{3, "Định luật bảo toàn khối lượng"},
			{4, "Phương trình hóa học"},
			{5, "Tính theo phương trình hóa học"},
		}},
		{ID: "II", Title: "Chương II: Một số hợp chất thông dụng", Subject: Chemistry, Lessons: []Lesson{
			{6, "Acid"},
			{7, "Base"},
			{8, "Thang đo pH"},
			{9, "Oxide"},
			{10, "Muối"},
			{11, "Phân bón hóa học"},
		}},
		{ID: "III", Title: "Chương III: Khối lượng riêng & Áp suất", Subject: Physics, Lessons: []Lesson{
			{12, "Khối lượng riêng"},
			{13, "Áp suất"},
			{14, "Áp suất chất lỏng"},
			{15, "Áp suất khí quyển"},
			{16, "Lực đẩy Archimedes"},
		}},
		{ID: "IV", Title: "Chương IV: Tác dụng làm quay của lực", Subject: Physics, Lessons: []Lesson{
			{17, "Moment lực"},
			{18, "Đòn bẩy"},
		}},
		{ID: "V", Title: "Chương V: Điện", Subject: Physics, Lessons: []Lesson{
			{19, "Điện tích. Dòng điện"},
			{20, "Mạch điện và các bộ phận của mạch điện"},
			{21, "Tác dụng của dòng điện"},
			{22, "Cường độ dòng điện và Hiệu điện thế"},
		}},
		{ID: "VI", Title: "Chương VI: Nhiệt", Subject: Physics, Lessons: []Lesson{
			{23, "Năng lượng nhiệt"},
			{24, "Sự truyền nhiệt"},
			{25, "Sự nở vì nhiệt"},
		}},
		{ID: "VII", Title: "Chương VII: Cơ thể người", Subject: Biology, Lessons: []Lesson{
			{26, "Hệ vận động"},
			{27, "Dinh dưỡng và Tiêu hóa"},
			{28, "Máu và Hệ tuần hoàn"},
			{29, "Hệ hô hấp"},
			{30, "Hệ bài tiết"},
			{31, "Hệ thần kinh và các giác quan"},
			{32, "Hệ nội tiết"},
			{33, "Da và điều hòa thân nhiệt"},
			{34, "Sinh sản ở người"},
		}},
		{ID: "VIII", Title: "Chương VIII: Sinh vật và môi trường", Subject: Biology, Lessons: []Lesson{
			{35, "Môi trường sống và các nhân tố sinh thái"},
			{36, "Quần thể sinh vật"},
			{37, "Quần xã sinh vật"},
			{38, "Hệ sinh thái"},
			{39, "Cân bằng tự nhiên"},
			{40, "Bảo vệ môi trường"},
		}},
	},
	"9": {
		{ID: "I", Title: "Chương I: Năng lượng cơ học", Subject: Physics, Lessons: []Lesson{
			{1, "Động năng. Thế năng"},
			{2, "Cơ năng"},
			{3, "Công và Công suất"},
		}},
		{ID: "II", Title: "Chương II: Ánh sáng", Subject: Physics, Lessons: []Lesson{
			{4, "Khúc xạ ánh sáng"},
			{5, "Thấu kính hội tụ"},
			{6, "Thấu kính phân kì"},
			{7, "Mắt và các tật của mắt"},
			{8, "Kính lúp"},
		}},
		{ID: "III", Title: "Chương III: Điện tích & Từ trường", Subject: Physics, Lessons: []Lesson{
			{9, "Định luật Ohm"},
			{10, "Đoạn mạch nối tiếp và song song"},
			{11, "Điện năng và công suất điện"},
			{12, "Cảm ứng điện từ"},
			{13, "Dòng điện xoay chiều"},
		}},
		{ID: "IV", Title: "Chương IV: Kim loại", Subject: Chemistry, Lessons: []Lesson{
			{14, "Tính chất chung của kim loại"},
			{15, "Dãy hoạt động hóa học của kim loại"},
			{16, "Hợp kim. Sự ăn mòn kim loại"},
		}},
		{ID: "V", Title: "Chương V: Hóa học hữu cơ", Subject: Chemistry, Lessons: []Lesson{
			{17, "Hợp chất hữu cơ"},
			{18, "Methane. Ethylene"},
			{19, "Acetylene"},
			{20, "Rượu Etylic (Ethanol)"},
			{21, "Acid Acetic"},
			{22, "Chất béo"},
			{23, "Glucose. Saccharose. Tinh bột. Cellulose"},
			{24, "Protein. Polymer"},
		}},
		{ID: "VI", Title: "Chương VI: Di truyền và Biến dị", Subject: Biology, Lessons: []Lesson{
			{25, "Mendel và Khái niệm di truyền"},
			{26, "Nhiễm sắc thể"},
			{27, "DNA và Gene"},
			{28, "Đột biến gen"},
			{29, "Đột biến nhiễm sắc thể"},
		}},
		{ID: "VII", Title: "Chương VII: Tiến hóa", Subject: Biology, Lessons: []Lesson{
			{30, "Bằng chứng tiến hóa"},
			{31, "Cơ chế tiến hóa"},
			{32, "Sự phát sinh loài người"},
		}},
	},
}
