package interp

// prelude holds the derived procedures that are defined in Scheme itself, on
// top of the builtins.
const prelude = `
(define eq? (lambda (x y) (eqv? x y)))
(define not (lambda (x) (if x #f #t)))
(define boolean? (lambda (x) (or (eqv? x #t) (eqv? x #f))))
(define null? (lambda (x) (eqv? x '())))

(define zero? (lambda (x) (= x 0)))
(define positive? (lambda (x) (> x 0)))
(define negative? (lambda (x) (< x 0)))

(define abs (lambda (x) (if (negative? x) (- x) x)))
(define list (lambda list list))

(define cadr (lambda (x) (car (cdr x))))
(define caddr (lambda (x) (car (cdr (cdr x)))))

(define length
  (lambda (l)
    (if (null? l)
        0
        (+ 1 (length (cdr l))))))

(define append
  (lambda (a b)
    (if (null? a)
        b
        (cons (car a) (append (cdr a) b)))))

(define reverse
  (lambda (l)
    (letrec ((loop (lambda (l acc)
                     (if (null? l)
                         acc
                         (loop (cdr l) (cons (car l) acc))))))
      (loop l '()))))

(define map
  (lambda (f l)
    (if (null? l)
        '()
        (cons (f (car l)) (map f (cdr l))))))

(define for-each
  (lambda (f l)
    (if (null? l)
        '()
        (begin (f (car l)) (for-each f (cdr l))))))
`
