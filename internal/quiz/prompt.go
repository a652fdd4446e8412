package quiz

import "fmt"

// buildPrompt asks for a 15-question set split evenly across the three
// difficulty levels, restricted to multiple choice and true/false.
func buildPrompt(lessonTitle, grade string) string {
	return fmt.Sprintf(`Bạn là một chuyên gia giáo dục và gia sư khoa học nghiêm túc. Hãy tạo một bộ đề bài tập gồm ĐÚNG 15 câu hỏi cho bài học: %q trong chương trình Khoa học tự nhiên lớp %s (Sách Kết nối tri thức với cuộc sống).

  Yêu cầu TỐI QUAN TRỌNG:
  1. Nội dung câu hỏi và đáp án phải CHÍNH XÁC TUYỆT ĐỐI, bám sát từng chi tiết nhỏ trong bài học của sách giáo khoa Kết nối tri thức. Không bịa đặt kiến thức ngoài SGK.
  2. Đáp án đúng phải là duy nhất và không gây tranh cãi.
  3. Cấu trúc đề:
     - 5 câu mức độ "nhan_biet" (Dễ - Nhớ kiến thức SGK).
     - 5 câu mức độ "thong_hieu" (Trung bình - Hiểu bản chất).
     - 5 câu mức độ "van_dung" (Khó - Vận dụng giải quyết vấn đề).
  4. Các loại câu hỏi phải trộn lẫn giữa 2 dạng sau:
     - Trắc nghiệm khách quan 4 phương án (type: "multiple_choice", options: ["A...", "B...", "C...", "D..."]).
     - Trắc nghiệm Đúng/Sai (type: "true_false", correctAnswer: "Đúng" hoặc "Sai").
  5. TUYỆT ĐỐI KHÔNG tạo câu hỏi trả lời ngắn.
  6. Sử dụng LaTeX cho các công thức hóa học (ví dụ: $H_2O$) hoặc vật lý nếu có.
  7. Phản hồi bằng định dạng JSON chuẩn theo schema.`, lessonTitle, grade)
}
